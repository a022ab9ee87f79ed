// Copyright © Rob Burke inchworks.com, 2025.

// This file is part of OsisWeb.
//
// OsisWeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// OsisWeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with OsisWeb.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"inchworks.com/osisweb/internal/gallery"
	"inchworks.com/osisweb/web"
)

// version and copyright
const (
	version = "1.0.0"
	notice  = `
	Copyright (C) Rob Burke inchworks.com, 2025.
	This website software comes with ABSOLUTELY NO WARRANTY.
	This is free software, and you are welcome to redistribute it under certain conditions.
	For details see the GNU General Public License, version 3.
`
)

// file locations on server
var (
	SitePath   = "../site"   // site-specific resources
	PublicPath = "../public" // exported copy of the site
)

// Site configuration
type Configuration struct {

	// domains served
	Domains []string `yaml:"domains" env:"domains"`

	// from command line only
	AddrHTTP string `yaml:"http-addr" env:"http" env-default:":8000" env-description:"HTTP address"`

	// site identity
	SiteTitle string `yaml:"site-title" env:"site-title" env-default:"OSIS & MPK"`
	School    string `yaml:"school" env:"school" env-default:""`

	// data sources
	ActivitySource string   `yaml:"activity-source" env:"activity-source" env-default:"kegiatan.txt"` // file in site folder, or http(s) URL
	GalleryFile    string   `yaml:"gallery-file" env:"gallery-file" env-default:"gallery.yml"`       // image IDs, in site folder
	GalleryIDs     []string `yaml:"gallery-ids" env:"gallery-ids"`                                   // image IDs, if there is no gallery file
	HomeImages     int      `yaml:"home-images" env-default:"4"`                                     // thumbnails previewed on home page
	ThumbnailWidth int      `yaml:"thumbnail-width" env-default:"800"`                               // requested from image host

	// image checks
	SkipImageChecks bool          `yaml:"skip-image-checks" env:"skip-image-checks" env-default:"false"` // don't check that images can be loaded
	ProbeLimit      int           `yaml:"probe-limit" env-default:"4"`                                   // concurrent checks
	ProbeTimeout    time.Duration `yaml:"probe-timeout" env-default:"10s"`                               // per image request. Units s.

	// operational settings
	AllowedQueries []string      `yaml:"allowed-queries" env-default:"fbclid"`               // URL query names allowed, in addition to the site's own
	MaxCacheAge    time.Duration `yaml:"max-cache-age" env:"max-cache-age" env-default:"10m"` // browser cache control, maximum age. Units s, m or h.
	SiteRefresh    time.Duration `yaml:"site-refresh" env-default:"1h"`                      // refresh interval for activities and images. Units m or h.
	TimeoutFetch   time.Duration `yaml:"timeout-fetch" env-default:"30s"`                    // maximum time to fetch activities. Units s.
	TimeoutWeb     time.Duration `yaml:"timeout-web" env-default:"20s"`                      // maximum time for web request, same for response (default). Units s or m.

	// publishing
	Bucket       string `yaml:"bucket" env:"bucket" env-default:""`             // S3 bucket
	Distribution string `yaml:"distribution" env:"distribution" env-default:""` // CloudFront distribution ID
}

// Application struct supplies application-wide dependencies.
type Application struct {
	cfg *Configuration

	errorLog      *log.Logger
	infoLog       *log.Logger
	threatLog     *log.Logger
	session       *scs.SessionManager
	templateCache map[string]*template.Template

	// external requests for activities and images
	client *http.Client
	prober *gallery.Prober

	staticFS  *overlayFS
	exporting bool // rendering pages for a static host

	// All pages share one set of site data.
	siteState SiteState
}

func main() {

	// logging
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	threatLog := log.New(os.Stdout, "THREAT\t", log.Ldate|log.Ltime)

	if err := newRootCmd(errorLog, infoLog, threatLog).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the command line interface. With no command, the site is served.
func newRootCmd(errorLog *log.Logger, infoLog *log.Logger, threatLog *log.Logger) *cobra.Command {

	// setup common to all commands
	start := func() *Application {
		infoLog.Printf("OsisWeb %s", version)
		infoLog.Print(notice)

		cfg := configure(infoLog, errorLog)
		app, err := initialise(cfg, errorLog, infoLog, threatLog)
		if err != nil {
			errorLog.Fatal(err)
		}
		return app
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website",
		Run: func(cmd *cobra.Command, args []string) {
			start().serve()
		},
	}

	root := &cobra.Command{
		Use:           "osisweb",
		Short:         "Website for a school's student organisations",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           serveCmd.Run,
	}

	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static copy of the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := start()
			app.siteState.onRefresh(cmd.Context())

			n, err := app.export(out)
			if err != nil {
				errorLog.Print(err)
				return err
			}
			infoLog.Printf("Exported %d files to %s", n, out)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&out, "out", PublicPath, "output folder")

	var bucket, distribution string
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the website and upload it to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := start()
			if bucket == "" {
				bucket = app.cfg.Bucket
			}
			if distribution == "" {
				distribution = app.cfg.Distribution
			}
			if bucket == "" {
				err := errors.New("no S3 bucket specified")
				errorLog.Print(err)
				return err
			}

			app.siteState.onRefresh(cmd.Context())
			if err := app.publish(cmd.Context(), out, bucket, distribution); err != nil {
				errorLog.Print(err)
				return err
			}
			return nil
		},
	}
	publishCmd.Flags().StringVar(&out, "out", PublicPath, "output folder")
	publishCmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket name")
	publishCmd.Flags().StringVar(&distribution, "distribution", "", "CloudFront distribution ID, for invalidation")

	var recursive bool
	var idsFile string
	driveCmd := &cobra.Command{
		Use:   "drive-ids <folder-url>",
		Short: "List the image IDs in a public Google Drive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := driveIDs(cmd.Context(), args[0], recursive, idsFile, infoLog); err != nil {
				errorLog.Print(err)
				return err
			}
			return nil
		},
	}
	driveCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "include sub-folders")
	driveCmd.Flags().StringVarP(&idsFile, "out", "o", "", "gallery file to write (default stdout)")

	root.AddCommand(serveCmd, exportCmd, publishCmd, driveCmd)
	return root
}

// configure reads the site configuration.
func configure(infoLog *log.Logger, errorLog *log.Logger) *Configuration {

	// redirect to test folders
	test := os.Getenv("test")
	if test != "" {
		SitePath = filepath.Join(test, filepath.Base(SitePath))
		PublicPath = filepath.Join(test, filepath.Base(PublicPath))
	}

	// site configuration
	cfg := &Configuration{}
	if err := cleanenv.ReadConfig(filepath.Join(SitePath, "configuration.yml"), cfg); err != nil {

		// no file - go with just environment variables
		infoLog.Print(err.Error())
		if err := cleanenv.ReadEnv(cfg); err != nil {
			errorLog.Fatal(err)
		}
	}
	return cfg
}

// Initialisation, common to all commands and to tests.
func initialise(cfg *Configuration, errorLog *log.Logger, infoLog *log.Logger, threatLog *log.Logger) (*Application, error) {

	// application templates
	forApp, err := fs.Sub(web.Files, "template")
	if err != nil {
		return nil, err
	}

	// initialise template cache, with site customisation
	templateCache, err := newTemplateCache(forApp, os.DirFS(filepath.Join(SitePath, "templates")))
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.TimeoutFetch}

	// dependency injection
	app := &Application{
		cfg:           cfg,
		errorLog:      errorLog,
		infoLog:       infoLog,
		threatLog:     threatLog,
		templateCache: templateCache,
		client:        client,
		prober: &gallery.Prober{
			Client:  client,
			Limit:   cfg.ProbeLimit,
			Timeout: cfg.ProbeTimeout,
		},
	}

	// embedded static files, overlaid by site customisation
	staticApp, err := fs.Sub(web.Files, "static")
	if err != nil {
		return nil, err
	}
	app.staticFS = newOverlayFS(os.DirFS(filepath.Join(SitePath, "static")), staticApp)

	// initialise session manager
	app.session = initSession(len(cfg.Domains) > 0)

	// cached state
	app.siteState.Init(app)
	warn, err := app.siteState.setupCache()
	if err != nil {
		return nil, err
	}
	if len(warn) > 0 {
		infoLog.Print("Conflicting page menu items:")
		for _, w := range warn {
			infoLog.Print("\t" + w)
		}
	}

	return app, nil
}

// initSession returns the session manager.
func initSession(live bool) *scs.SessionManager {

	sm := scs.New()

	sm.Cookie.Name = "session"
	sm.Lifetime = 24 * time.Hour
	sm.Store = memstore.New()

	// secure cookie over HTTPS except in test
	if live {
		sm.Cookie.Secure = true
	}

	return sm
}

// serve runs the web server and background worker until interrupted.
func (app *Application) serve() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ticker for refresh
	tr := time.NewTicker(app.cfg.SiteRefresh)
	defer tr.Stop()

	// closing this channel signals worker goroutines to return
	chDone := make(chan bool, 1)
	chStopped := make(chan struct{})

	// start background worker
	go func() {
		app.siteState.worker(tr.C, chDone)
		close(chStopped)
	}()

	srv := &http.Server{
		Addr:         app.cfg.AddrHTTP,
		ErrorLog:     log.New(os.Stdout, "SERVER\t", log.Ldate|log.Ltime),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  app.cfg.TimeoutWeb,
		WriteTimeout: app.cfg.TimeoutWeb + time.Second,
	}

	go func() {
		<-ctx.Done()
		app.infoLog.Print("Stopping server")

		sdCtx, cancel := context.WithTimeout(context.Background(), app.cfg.TimeoutWeb)
		defer cancel()
		if err := srv.Shutdown(sdCtx); err != nil {
			app.errorLog.Print(err)
		}
	}()

	app.infoLog.Printf("Starting server on %s", app.cfg.AddrHTTP)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		app.errorLog.Print(err)
	}

	close(chDone)
	<-chStopped
}
