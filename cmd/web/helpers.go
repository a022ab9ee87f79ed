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
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strconv"
	"strings"
)

// session keys
const sessionWidth = "width"

// The following functions return status code and corresponding description HTTP client.
// They just make the code a bit easier to read.
// BadRequest and ServerError indicate faults with the OsisWeb software,
// on the client and server sides respectively, and so should be logged.

func (app *Application) httpBadRequest(w http.ResponseWriter, err error) {

	app.log(err)
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}

func httpNotFound(w http.ResponseWriter) {

	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (app *Application) httpServerError(w http.ResponseWriter, err error) {

	app.log(err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Log an error for debugging

func (app *Application) log(err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
}

// queryIndex returns an integer query parameter, and whether it was specified.
// Our own links only carry numbers, so anything else is a fault.
func queryIndex(q url.Values, name string) (int, bool, error) {

	if !q.Has(name) {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(q.Get(name)))
	if err != nil {
		return 0, false, fmt.Errorf("query %s: %w", name, err)
	}
	return n, true, nil
}

// render fetches a template from the cache and writes the result as an HTTP response.
func (app *Application) render(w http.ResponseWriter, r *http.Request, name string, td TemplateData) {

	if td == nil {
		td = &DataCommon{}
	}

	td.addDefaultData(app, r, strings.SplitN(name, ".", 2)[0])

	// Retrieve the appropriate template set from the cache based on the page name
	// (like `home.page.tmpl`).
	ts, ok := app.templateCache[name]
	if !ok {
		app.httpServerError(w, fmt.Errorf("the template %s does not exist", name))
		return
	}

	// write template via buffer, to catch any error instead of sending a part executed page
	buf := new(bytes.Buffer)

	if err := ts.Execute(buf, td); err != nil {
		app.httpServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// viewWidth returns the viewport width for the request, given any width reported in the query.
// A reported width is remembered for later pages, and zero means unknown.
func (app *Application) viewWidth(r *http.Request, reported int) int {

	if reported > 0 {
		app.session.Put(r.Context(), sessionWidth, reported)
		return reported
	}
	return app.session.GetInt(r.Context(), sessionWidth)
}
