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
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"inchworks.com/osisweb/internal/cache"
	"inchworks.com/osisweb/internal/carousel"
	"inchworks.com/osisweb/internal/models"
)

// Template data for all pages - implements TemplateData interface so we can add data without knowing
// which template we have

type TemplateData interface {
	addDefaultData(app *Application, r *http.Request, name string)
}

type DataCommon struct {
	Canonical string // canonical URL
	Menu      []*cache.MenuItem
	Meta      DataMeta
	Page      string
	School    string
	SiteTitle string
	Static    bool // no server behind the page
}

type DataMeta struct {
	Title       string
	Description string
	NoIndex     bool
}

func (d *DataCommon) addDefaultData(app *Application, r *http.Request, page string) {

	// set canonical URL for search engines, if we accept more than one domain
	if len(app.cfg.Domains) > 1 {
		d.Canonical = "https://" + app.cfg.Domains[0] + r.URL.Path
	}

	d.Menu = app.siteState.mainMenu()
	d.Page = page
	d.School = app.cfg.School
	d.SiteTitle = app.cfg.SiteTitle
	d.Static = app.exporting

	if d.Meta.Title == "" {
		d.Meta.Title = app.cfg.SiteTitle
	}
}

// template data for display pages

type DataHome struct {
	Datasets     []*DataView
	Latest       *models.ActivityYear
	NoActivities string
	Thumbnails   []*DataSlide
	GalleryMsg   string
	DataCommon
}

type DataView struct {
	Key      string
	Title    string
	Logo     string
	HRef     string
	Selected bool
}

type DataStructure struct {
	Views      []*DataView
	Title      string
	Logo       string
	Prefix     string
	Leadership []*models.Person
	Management []*models.Person
	Divisions  []*DataDivisionCard

	// carousel
	Carousel   *carousel.Carousel
	WidthKnown bool         // viewport reported by the browser
	Track      template.CSS // card step and track position
	PrevHRef   string
	NextHRef   string
	DataCommon
}

type DataDivisionCard struct {
	Label string
	Title string
	Logo  string
	HRef  string
}

type DataDivision struct {
	Label    string
	Title    string
	Logo     string
	Body     template.HTML
	BackHRef string
	DataCommon
}

type DataKegiatan struct {

	// gallery
	GalleryMsg string // error state, replaces the gallery
	Slides     []*DataSlide
	Number     int // active slide, from 1
	Total      int
	PrevHRef   string
	NextHRef   string
	Strip      *DataStrip
	Lightbox   *DataLightbox

	// activity accordion
	Years        []*DataYear
	NoActivities string
	DataCommon
}

type DataSlide struct {
	Index     int
	Src       string
	Loading   bool
	Active    bool
	HRef      string // make active
	PhotoHRef string // open in lightbox
}

type DataStrip struct {
	Dots      []*DataDot
	FirstHRef string
	LastHRef  string
	AtFirst   bool
	AtLast    bool
}

type DataDot struct {
	Label    int
	Ellipsis bool
	Current  bool
	HRef     string
}

type DataLightbox struct {
	Src       string
	Number    int // 1-based
	Total     int
	PrevHRef  string
	NextHRef  string
	CloseHRef string
}

type DataYear struct {
	Year       string
	Activities []*models.Activity
	Open       bool
	ToggleHRef string
}

type DataInfo struct {
	Title string
	Body  template.HTML
	DataCommon
}

// Define functions callable from a template

var templateFuncs = template.FuncMap{
	"asset":   asset,
	"safeURL": safeURL,
}

// asset returns the address for an image held with the site's static files.
func asset(name string) string {

	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "://") || strings.HasPrefix(name, "data:") {
		return name
	}
	return path.Join("/static", name)
}

// safeURL marks an image source as trusted. It is only used for sources built by the application.
func safeURL(src string) template.URL {
	return template.URL(src)
}

// newTemplateCache parses the page templates, each with all layouts and partials.
// A template in the site folder replaces an application template of the same name.
func newTemplateCache(forApp fs.FS, forSite fs.FS) (map[string]*template.Template, error) {

	files := make(map[string][]byte)
	for _, fsys := range []fs.FS{forApp, forSite} {
		names, err := fs.Glob(fsys, "*.tmpl")
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			b, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, err
			}
			files[name] = b
		}
	}

	// shared templates, in a stable order
	var pages, shared []string
	for name := range files {
		if strings.HasSuffix(name, ".page.tmpl") {
			pages = append(pages, name)
		} else {
			shared = append(shared, name)
		}
	}
	if len(pages) == 0 {
		return nil, errors.New("no page templates")
	}
	sort.Strings(shared)

	cache := make(map[string]*template.Template, len(pages))
	for _, page := range pages {

		ts, err := template.New(page).Funcs(templateFuncs).Parse(string(files[page]))
		if err != nil {
			return nil, err
		}

		for _, name := range shared {
			if _, err := ts.New(name).Parse(string(files[name])); err != nil {
				return nil, err
			}
		}
		cache[page] = ts
	}

	return cache, nil
}
