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

// Static copy of the website, and publishing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"inchworks.com/osisweb/internal/gallery"
	"inchworks.com/osisweb/internal/publish"
)

// exportPage is a page to be written, and the file that holds it.
type exportPage struct {
	target string
	file   string
}

// driveIDs writes the image IDs in a Google Drive folder as a gallery file.
func driveIDs(ctx context.Context, folderURL string, recursive bool, to string, infoLog *log.Logger) error {

	ex := &gallery.Extractor{
		Client:    &http.Client{Timeout: 30 * time.Second},
		InfoLog:   infoLog,
		Recursive: recursive,
	}

	ids, err := ex.Extract(ctx, folderURL)
	if err != nil {
		return err
	}
	infoLog.Printf("Found %d images", len(ids))

	var w io.Writer = os.Stdout
	if to != "" {
		f, err := os.Create(to)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return gallery.WriteIDs(w, ids)
}

// export renders the default state of every page, and copies the static files, to a folder.
// It returns the number of files written.
func (app *Application) export(out string) (int, error) {

	app.exporting = true
	defer func() { app.exporting = false }()

	h := app.Routes()

	n := 0
	for _, pg := range app.siteState.exportPages() {

		req := httptest.NewRequest("GET", pg.target, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			return n, fmt.Errorf("export %s: %d %s", pg.target, rec.Code, http.StatusText(rec.Code))
		}
		if err := writeFile(filepath.Join(out, filepath.FromSlash(pg.file)), rec.Body); err != nil {
			return n, err
		}
		n++
	}

	// static files, with site files replacing embedded ones
	layers := app.staticFS.layers
	for i := len(layers) - 1; i >= 0; i-- {
		c, err := copyFiles(layers[i], filepath.Join(out, "static"))
		if err != nil {
			return n, err
		}
		n += c
	}

	return n, nil
}

// exportPages returns the pages to be exported.
func (s *SiteState) exportPages() []exportPage {

	defer s.updatesNone()()

	pgs := []exportPage{
		{target: "/", file: "index.html"},
		{target: "/kegiatan", file: "kegiatan/index.html"},
		{target: "/struktur", file: "struktur/index.html"},
	}

	for _, k := range s.structures.Order {
		v := strings.ToLower(k)
		pgs = append(pgs, exportPage{
			target: "/struktur/" + url.PathEscape(v),
			file:   path.Join("struktur", v, "index.html"),
		})

		for _, d := range s.structures.ByKey[k].Divisions {
			name := d.Name()
			pgs = append(pgs, exportPage{
				target: "/divisi/" + url.PathEscape(name),
				file:   path.Join("divisi", name, "index.html"),
			})
		}
	}

	var infos []string
	for p := range s.pages.Infos {
		infos = append(infos, p)
	}
	sort.Strings(infos)
	for _, p := range infos {
		name, _ := url.PathUnescape(strings.TrimPrefix(p, "/"))
		pgs = append(pgs, exportPage{target: p, file: path.Join(name, "index.html")})
	}

	return pgs
}

// publish exports the site and uploads it to S3.
func (app *Application) publish(ctx context.Context, out string, bucket string, distribution string) error {

	if err := os.RemoveAll(out); err != nil {
		return err
	}

	n, err := app.export(out)
	if err != nil {
		return err
	}
	app.infoLog.Printf("Exported %d files to %s", n, out)

	p, err := publish.New(ctx, bucket, distribution, app.infoLog)
	if err != nil {
		return err
	}
	p.CacheControl = "public, max-age=" + fmt.Sprint(int(app.cfg.MaxCacheAge.Seconds()))

	_, err = p.Publish(ctx, out)
	return err
}

// copyFiles copies all files in a file system to a folder. A missing file system is treated as empty.
func copyFiles(from fs.FS, to string) (int, error) {

	n := 0
	err := fs.WalkDir(from, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			if name == "." && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := from.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := writeFile(filepath.Join(to, filepath.FromSlash(name)), f); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// writeFile creates a file, and any folders needed for it.
func writeFile(name string, r io.Reader) error {

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
