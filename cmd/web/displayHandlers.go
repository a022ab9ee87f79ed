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

// Requests for display pages

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"inchworks.com/osisweb/internal/models"
)

// division serves the page for a sekbid or komisi.
func (app *Application) division(w http.ResponseWriter, r *http.Request) {

	ps := httprouter.ParamsFromContext(r.Context())

	data, err := app.siteState.DisplayDivision(ps.ByName("name"))
	if errors.Is(err, models.ErrNoRecord) {
		httpNotFound(w)
		return
	}

	app.render(w, r, "divisi.page.tmpl", data)
}

// healthz reports that the server is running.
func (app *Application) healthz(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}

// home serves the main page.
func (app *Application) home(w http.ResponseWriter, r *http.Request) {

	app.render(w, r, "home.page.tmpl", app.siteState.DisplayHome())
}

// info returns a configurable static page for the website
func (app *Application) info(w http.ResponseWriter, r *http.Request) {

	ps := httprouter.ParamsFromContext(r.Context())

	data, err := app.siteState.DisplayInfo(ps.ByName("page"))
	if errors.Is(err, models.ErrNoRecord) {
		httpNotFound(w)
		return
	}

	app.render(w, r, "info.page.tmpl", data)
}

// kegiatan serves the gallery and activities page.
func (app *Application) kegiatan(w http.ResponseWriter, r *http.Request) {

	q := r.URL.Query()

	var ks kegiatanState
	var errSlide, errPhoto error
	ks.slide, _, errSlide = queryIndex(q, "slide")
	ks.photo, ks.isPhoto, errPhoto = queryIndex(q, "photo")
	if err := errors.Join(errSlide, errPhoto); err != nil {
		app.httpBadRequest(w, err)
		return
	}
	ks.open, ks.isOpen = q.Get("open"), q.Has("open")

	app.render(w, r, "kegiatan.page.tmpl", app.siteState.DisplayKegiatan(ks))
}

// structure serves the organisation chart for OSIS or MPK.
// The dataset is named in the path, or by a view query for older links.
func (app *Application) structure(w http.ResponseWriter, r *http.Request) {

	ps := httprouter.ParamsFromContext(r.Context())
	q := r.URL.Query()

	view := ps.ByName("view")
	if view == "" {
		view = q.Get("view")
	}

	index, _, errIndex := queryIndex(q, "i")
	width, _, errWidth := queryIndex(q, "w")
	if err := errors.Join(errIndex, errWidth); err != nil {
		app.httpBadRequest(w, err)
		return
	}

	data := app.siteState.DisplayStructure(view, index, app.viewWidth(r, width))

	app.render(w, r, "struktur.page.tmpl", data)
}
