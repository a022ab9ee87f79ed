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
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// query parameters used by the site's own pages
var siteQueries = []string{"i", "open", "photo", "slide", "view", "w"}

// HANDLERS.

// ccCache returns a handler that sets cache control for mutable public pages.
func (app *Application) ccCache(next http.Handler) http.Handler {

	cc := "public, max-age=" + strconv.Itoa(int(app.cfg.MaxCacheAge.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cc)
		next.ServeHTTP(w, r)
	})
}

// ccNoCache returns a handler for pages that depend on the session, always server-revalidated.
func (app *Application) ccNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, private")
		next.ServeHTTP(w, r)
	})
}

// fileServer returns a handler that serves files.
// It wraps http.File server, logging requests for missing files.
// (Thanks https://stackoverflow.com/questions/34017342/log-404-on-http-fileserver.)
func (app *Application) fileServer(root http.FileSystem) http.Handler {

	fs := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// use a response writer that saves status
		sw := &statusWriter{ResponseWriter: w}

		fs.ServeHTTP(sw, r)
		if sw.status == http.StatusNotFound {
			app.threat("bad file", r)
		}
	})
}

// logRequest records an HTTP request, without query values.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		req := r.URL.Path
		if r.URL.RawQuery != "" {
			var names []string
			for name := range r.URL.Query() {
				names = append(names, name)
			}
			req += "?" + strings.Join(names, ",")
		}

		app.infoLog.Printf("%s %s %s", r.Proto, r.Method, req)

		next.ServeHTTP(w, r)
	})
}

// noQuery returns a handler that blocks probes with random query parameters.
func (app *Application) noQuery(next http.Handler) http.Handler {

	allowed := make(map[string]bool, len(siteQueries)+len(app.cfg.AllowedQueries))
	for _, q := range siteQueries {
		allowed[q] = true
	}
	for _, q := range app.cfg.AllowedQueries {
		allowed[q] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			for name := range r.URL.Query() {
				if !allowed[name] {
					app.threat("bad query", r)
					http.Error(w, "Query parameters not accepted", http.StatusBadRequest)
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// public returns a handler that sets headers for public web pages.
func (app *Application) public(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// set canonical URL for search engines, if we accept more than one domain
		if len(app.cfg.Domains) > 1 {
			u := *r.URL
			u.Host = app.cfg.Domains[0] // first listed domain
			u.Scheme = "https"
			w.Header().Set("Link", `<`+u.String()+`>; rel="canonical"`)
		}

		next.ServeHTTP(w, r)
	})
}

// Recover from panic, set in httprouter
func (app *Application) recoverPanic() func(http.ResponseWriter, *http.Request, interface{}) {

	return func(w http.ResponseWriter, r *http.Request, err interface{}) {
		w.Header().Set("Connection", "close")
		app.httpServerError(w, fmt.Errorf("%s", err))
	}
}

// routeNotFound returns a handler that logs HTTP requests to non-existent routes.
// Typically these are intrusion attempts.
func (app *Application) routeNotFound() http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// don't report common requests by browsers
		d, f := path.Split(r.URL.Path)
		if d == "/" && (path.Ext(f) == ".png" || f == "favicon.ico") {
			http.NotFound(w, r)
			return
		}

		app.threat("bad URL", r)
		http.NotFound(w, r)
	})
}

// secureHeaders adds HTTP headers for security against XSS and Clickjacking.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-XSS-Protection", "1; mode=block")

		next.ServeHTTP(w, r)
	})
}

// timeout returns a handler that limits the time for a request.
func (app *Application) timeout(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, app.cfg.TimeoutWeb, "Request timed out")
}

// wwwRedirect redirects a request for the www sub-domain to the parent domain.
func wwwRedirect(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if host := strings.TrimPrefix(r.Host, "www."); host != r.Host {
			// Request host has www. prefix. Redirect to host with www. trimmed.
			u := *r.URL
			u.Host = host
			u.Scheme = "https"
			http.Redirect(w, r, u.String(), http.StatusMovedPermanently)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// HELPER FUNCTIONS.

// A noDirFileSystem blocks browsing of directories.
// It avoids the need to install copies of index.html but allows index.html to be served if there is one.
// From https://www.alexedwards.net/blog/disable-http-fileserver-directory-listings.
type noDirFileSystem struct {
	http.FileSystem
}

func (nfs noDirFileSystem) Open(path string) (http.File, error) {
	fs := nfs.FileSystem

	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if s.IsDir() {
		index := filepath.Join(path, "index.html")
		fi, err := fs.Open(index)
		if err != nil {
			closeErr := f.Close()
			if closeErr != nil {
				return nil, closeErr
			}

			return nil, err
		}
		fi.Close()
	}

	return f, nil
}

// An overlayFS serves each file from the first layer that has it.
type overlayFS struct {
	layers []fs.FS
}

func newOverlayFS(layers ...fs.FS) *overlayFS {
	return &overlayFS{layers: layers}
}

func (ofs *overlayFS) Open(name string) (fs.File, error) {

	err := fs.ErrNotExist
	for _, l := range ofs.layers {
		var f fs.File
		f, err = l.Open(name)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return f, err
		}
	}
	return nil, err
}

// A statusWriter is a ResponseWriter that saves the response status.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// threat records an attempted intrusion
func (app *Application) threat(event string, r *http.Request) {
	app.threatLog.Printf("%s - %s %s %s %s", r.RemoteAddr, event, r.Proto, r.Method, r.URL.RequestURI())
}
