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
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// For caching we're using a few different patterns.
//
// 0: Specify nothing, leaving it to the browser.
// Used for static files, so that site customisation can overlay them without them being immutable.
//
// 1: "no-cache, private" on the structure page, which depends on the viewport width held in the session.
//
// 2: Configurable "max-age", default 10 minutes, for other pages.
// Activities and gallery images are refreshed in the background, so a page may be a little stale.

// Register handlers for routes

func (app *Application) Routes() http.Handler {

	commonHs := alice.New(secureHeaders, app.noQuery, wwwRedirect)
	dynHs := alice.New(app.timeout, app.session.LoadAndSave, app.logRequest) // dynamic page handlers
	staticHs := alice.New(app.timeout)

	publicCacheHs := dynHs.Append(app.public, app.ccCache)
	publicNoCacheHs := dynHs.Append(app.public, app.ccNoCache)

	// HttpRouter wrapped to allow middleware handlers
	router := httprouter.New()

	// panic handler
	router.PanicHandler = app.recoverPanic()

	// log rejected routes
	router.NotFound = app.routeNotFound()

	// public pages
	router.Handler("GET", "/", publicCacheHs.ThenFunc(app.home))
	router.Handler("GET", "/divisi/:name", publicCacheHs.ThenFunc(app.division))
	router.Handler("GET", "/info/:page", publicCacheHs.ThenFunc(app.info))
	router.Handler("GET", "/kegiatan", publicCacheHs.ThenFunc(app.kegiatan))
	router.Handler("GET", "/struktur", publicNoCacheHs.ThenFunc(app.structure))
	router.Handler("GET", "/struktur/:view", publicNoCacheHs.ThenFunc(app.structure))

	// monitoring
	router.Handler("GET", "/healthz", staticHs.ThenFunc(app.healthz))

	// this is just a courtesy, say no immediately instead of redirecting to "/static/" first
	router.Handler("GET", "/static", http.NotFoundHandler())

	// file system that blocks directory listing
	fsStatic := noDirFileSystem{http.FS(app.staticFS)}

	// serve static files (Alice doesn't seem to simplify these)
	router.Handler("GET", "/static/*filepath", staticHs.Then(http.StripPrefix("/static", app.fileServer(fsStatic))))

	// files that must be in root
	router.Handler("GET", "/robots.txt", staticHs.Then(app.fileServer(fsStatic)))

	// browsers that ignore the icon link still ask for this
	router.Handler("GET", "/favicon.ico", http.RedirectHandler("/static/images/logo.svg", http.StatusMovedPermanently))

	// return 'standard' middleware chain followed by router
	return commonHs.Then(router)
}
