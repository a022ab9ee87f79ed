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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKegiatanNotConfigured(t *testing.T) {

	app := newTestApp(t, siteFiles(0))
	app.siteState.onRefresh(t.Context())

	res := get(t, app.Routes(), "/kegiatan")
	require.Equal(t, http.StatusOK, res.code)
	assert.Contains(t, res.body, "Belum ada gambar yang dikonfigurasi")
	assert.NotContains(t, res.body, "carousel-container")
	assert.NotContains(t, res.body, `class="lightbox"`)

	// activities are independent of the gallery
	assert.Contains(t, res.body, "Lomba Kebersihan")
}

func TestKegiatanGallery(t *testing.T) {

	app := newTestApp(t, siteFiles(12))
	app.siteState.onRefresh(t.Context())
	h := app.Routes()

	res := get(t, h, "/kegiatan?slide=5")
	require.Equal(t, http.StatusOK, res.code)
	assert.Contains(t, res.body, "carousel-container")
	assert.Equal(t, 12, strings.Count(res.body, `alt="Foto `))
	assert.Equal(t, 1, strings.Count(res.body, `<div class="slide active">`))
	assert.Contains(t, res.body, `<p class="slide-count">6 / 12</p>`)

	// pagination: first, ellipsis, 5-7, ellipsis, last
	assert.Contains(t, res.body, `<span class="dot current">6</span>`)
	assert.Equal(t, 2, strings.Count(res.body, `class="ellipsis"`))
	assert.Contains(t, res.body, `href="/kegiatan?open=0&amp;slide=4">5</a>`)
	assert.Contains(t, res.body, `href="/kegiatan?open=0&amp;slide=11">12</a>`)
	assert.Contains(t, res.body, `href="/kegiatan?open=0">1</a>`)

	// previous and next slides
	assert.Contains(t, res.body, `class="slide-btn next" href="/kegiatan?open=0&amp;slide=6"`)
	assert.Contains(t, res.body, `class="slide-btn prev" href="/kegiatan?open=0&amp;slide=4"`)

	// wraps from first to last
	res = get(t, h, "/kegiatan")
	assert.Contains(t, res.body, `class="slide-btn prev" href="/kegiatan?open=0&amp;slide=11"`)
	assert.Contains(t, res.body, `<span class="disabled">&laquo;</span>`)
	assert.Contains(t, res.body, `<p class="slide-count">1 / 12</p>`)

	// not a link we make
	res = get(t, h, "/kegiatan?slide=lima")
	assert.Equal(t, http.StatusBadRequest, res.code)
	res = get(t, h, "/kegiatan?photo=")
	assert.Equal(t, http.StatusBadRequest, res.code)
}

func TestKegiatanLightbox(t *testing.T) {

	app := newTestApp(t, siteFiles(12))
	app.siteState.onRefresh(t.Context())
	h := app.Routes()

	res := get(t, h, "/kegiatan?photo=11")
	require.Equal(t, http.StatusOK, res.code)
	assert.Contains(t, res.body, `class="lightbox"`)
	assert.Contains(t, res.body, "12 / 12")
	assert.Contains(t, res.body, "https://drive.google.com/uc?id=imgl&amp;export=view")

	// wraps to first, and closes to the same slide
	assert.Contains(t, res.body, `class="lightbox-next" href="/kegiatan?open=0&amp;photo=0"`)
	assert.Contains(t, res.body, `class="lightbox-prev" href="/kegiatan?open=0&amp;photo=10&amp;slide=10"`)
	assert.Contains(t, res.body, `class="lightbox-close" href="/kegiatan?open=0&amp;slide=11"`)

	// active slide follows the lightbox
	assert.Contains(t, res.body, `<span class="dot current">12</span>`)

	// out of range wraps
	res = get(t, h, "/kegiatan?photo=-1")
	assert.Contains(t, res.body, "12 / 12")

	res = get(t, h, "/kegiatan")
	assert.NotContains(t, res.body, `class="lightbox"`)
}

func TestKegiatanAccordion(t *testing.T) {

	app := newTestApp(t, siteFiles(0))
	app.siteState.onRefresh(t.Context())
	h := app.Routes()

	// first section open by default, years ascending
	res := get(t, h, "/kegiatan")
	require.Equal(t, http.StatusOK, res.code)
	assert.Less(t, strings.Index(res.body, ">2023<"), strings.Index(res.body, ">2024<"))
	assert.Contains(t, res.body, `<div id="tahun-0" class="accordion-item open">`)
	assert.Contains(t, res.body, `<div id="tahun-1" class="accordion-item">`)
	assert.Contains(t, res.body, "Lomba Kebersihan")
	assert.NotContains(t, res.body, "Pentas Seni")

	// line without a link is dropped
	assert.NotContains(t, res.body, "Tanpa Tautan")

	// toggles are independent
	assert.Contains(t, res.body, `href="/kegiatan?open=#tahun-0"`)
	assert.Contains(t, res.body, `href="/kegiatan?open=0%2C1#tahun-1"`)

	res = get(t, h, "/kegiatan?open=0,1")
	assert.Contains(t, res.body, `<div id="tahun-0" class="accordion-item open">`)
	assert.Contains(t, res.body, `<div id="tahun-1" class="accordion-item open">`)
	assert.Contains(t, res.body, "Pentas Seni")

	// all collapsed
	res = get(t, h, "/kegiatan?open=")
	assert.Contains(t, res.body, `<div id="tahun-0" class="accordion-item">`)
	assert.Contains(t, res.body, `<div id="tahun-1" class="accordion-item">`)
}
