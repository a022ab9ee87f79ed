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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {

	files := siteFiles(2)
	files["pages/Tentang.Visi_Misi.md"] = "Menjadi teladan."
	files["divisions/sekbid1.md"] = "Program kerja sekbid 1."
	files["static/assets/images/OSIS/osis-logo.png"] = "png"
	files["static/robots.txt"] = "User-agent: *\nDisallow: /\n"
	app := newTestApp(t, files)
	app.siteState.onRefresh(t.Context())

	out := t.TempDir()
	n, err := app.export(out)
	require.NoError(t, err)

	// 3 main pages, 2 datasets, 13 divisions, 1 information page, 4 embedded and 2 site static files
	assert.Equal(t, 25, n)

	read := func(name string) string {
		t.Helper()
		b, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		require.NoError(t, err)
		return string(b)
	}

	assert.Contains(t, read("index.html"), "STRUKTUR ORGANISASI OSIS")
	assert.Contains(t, read("struktur/index.html"), "<h1>STRUKTUR ORGANISASI OSIS</h1>")
	assert.Contains(t, read("struktur/mpk/index.html"), "<h1>STRUKTUR ORGANISASI MPK</h1>")
	assert.Contains(t, read("divisi/sekbid1/index.html"), "Program kerja sekbid 1.")
	assert.Contains(t, read("divisi/komisie/index.html"), "Komisi E")
	assert.Contains(t, read("kegiatan/index.html"), "carousel-container")
	assert.Contains(t, read("info/tentang.visi-misi/index.html"), "Menjadi teladan.")

	// each dataset reachable by path, since a static host ignores queries
	for _, name := range []string{"index.html", "struktur/index.html", "struktur/osis/index.html", "divisi/komisia/index.html"} {
		assert.Contains(t, read(name), `href="/struktur/mpk"`, name)
		assert.NotContains(t, read(name), "view=", name)
	}
	assert.Contains(t, read("struktur/mpk/index.html"), `href="/struktur/osis"`)

	// no server to lay out the carousel, so the cards scroll
	pg := read("struktur/mpk/index.html")
	assert.Contains(t, pg, `<div class="carousel unsized" data-view-width="">`)
	assert.NotContains(t, pg, "carousel-btn")
	assert.NotContains(t, pg, "viewport.js")
	assert.Contains(t, read("static/js/viewport.js"), "innerWidth")

	// the application is left serving as before
	res := get(t, app.Routes(), "/struktur/mpk")
	assert.Contains(t, res.body, "viewport.js")

	// static files, with site files replacing embedded ones
	assert.Contains(t, read("static/css/osis.css"), ".carousel-track")
	assert.Equal(t, "png", read("static/assets/images/OSIS/osis-logo.png"))
	assert.Contains(t, read("static/robots.txt"), "Disallow: /")
}
