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

package gallery

// Gallery of pictures held on Google Drive, shown as a deck of slides with a lightbox.

import (
	"fmt"
	"net/url"
	"strings"

	"inchworks.com/osisweb/internal/models"
	"inchworks.com/osisweb/internal/pagination"
)

// URL templates for images on the third-party host
const (
	thumbnailURL = "https://drive.google.com/thumbnail?id=%s&sz=w%d"
	fullURL      = "https://drive.google.com/uc?id=%s&export=view"

	DefaultThumbnailWidth = 800
)

// Messages shown for the error state.
const (
	MsgNotConfigured = "Belum ada gambar yang dikonfigurasi. Silakan tambahkan ID gambar pada konfigurasi galeri."
	MsgLoadFailed    = "Gagal memuat gambar. Periksa konfigurasi galeri."
)

// Placeholder replaces an image that could not be loaded.
const Placeholder = `data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 width=%22800%22 height=%22600%22%3E%3Crect fill=%22%23f0f0f0%22 width=%22800%22 height=%22600%22/%3E%3Ctext x=%2250%25%22 y=%2250%25%22 font-size=%2224%22 text-anchor=%22middle%22 fill=%22%23999%22%3EGambar tidak tersedia%3C/text%3E%3C/svg%3E`

// Status is the load state of one image version.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

// Loads holds the load status of both versions of an image.
type Loads struct {
	Thumbnail Status
	Full      Status
}

// Statuses maps image IDs to their load status. A missing entry is still loading.
type Statuses map[string]Loads

// Build returns the images for a list of identifiers.
// Blank identifiers are skipped, and an empty list is reported as models.ErrNotConfigured.
func Build(ids []string, thumbWidth int) ([]*models.Image, error) {

	if thumbWidth <= 0 {
		thumbWidth = DefaultThumbnailWidth
	}

	images := make([]*models.Image, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		esc := url.QueryEscape(id)
		images = append(images, &models.Image{
			Id:           id,
			ThumbnailURL: fmt.Sprintf(thumbnailURL, esc, thumbWidth),
			FullURL:      fmt.Sprintf(fullURL, esc),
		})
	}

	if len(images) == 0 {
		return nil, models.ErrNotConfigured
	}
	return images, nil
}

// Thumbnail returns the source for an image's slide, substituting the placeholder on failure.
func (st Statuses) Thumbnail(img *models.Image) string {
	if st[img.Id].Thumbnail == StatusFailed {
		return Placeholder
	}
	return img.ThumbnailURL
}

// Full returns the source for an image in the lightbox.
// It falls back to the thumbnail if the full-size image failed, and to the placeholder if both did.
func (st Statuses) Full(img *models.Image) string {
	ld := st[img.Id]
	switch {
	case ld.Full != StatusFailed:
		return img.FullURL
	case ld.Thumbnail != StatusFailed:
		return img.ThumbnailURL
	default:
		return Placeholder
	}
}

// Loading returns true if the thumbnail has not been resolved yet.
func (st Statuses) Loading(img *models.Image) bool {
	return st[img.Id].Thumbnail == StatusLoading
}

// Deck is the slide view of a gallery, with one active slide.
type Deck struct {
	Images  []*models.Image
	Current int
}

// NewDeck returns a deck positioned at the first slide.
func NewDeck(images []*models.Image) *Deck {
	return &Deck{Images: images}
}

// GoTo makes a slide active. Stepping off either end wraps to the other.
func (d *Deck) GoTo(index int) {
	n := len(d.Images)
	if n == 0 {
		d.Current = 0
		return
	}

	if index < 0 {
		index = n - 1
	}
	if index >= n {
		index = 0
	}
	d.Current = index
}

func (d *Deck) Next() {
	d.GoTo(d.Current + 1)
}

func (d *Deck) Prev() {
	d.GoTo(d.Current - 1)
}

// NextIndex and PrevIndex return the slides that Next and Prev would select.
func (d *Deck) NextIndex() int {
	c := *d
	c.Next()
	return c.Current
}

func (d *Deck) PrevIndex() int {
	c := *d
	c.Prev()
	return c.Current
}

// Strip returns the pagination indicators for the deck.
func (d *Deck) Strip() *pagination.Strip {
	return pagination.New(len(d.Images), d.Current)
}

// Lightbox is a full-screen view of one image.
type Lightbox struct {
	Index int
	Open  bool
	n     int
}

// NewLightbox returns a closed lightbox for n images.
func NewLightbox(n int) *Lightbox {
	return &Lightbox{n: n}
}

// Close hides the lightbox. The index is kept, to return to the same slide.
func (lb *Lightbox) Close() {
	lb.Open = false
}

// Next moves to the following image, wrapping from last to first.
func (lb *Lightbox) Next() {
	if lb.n > 0 {
		lb.Index = (lb.Index + 1) % lb.n
	}
}

// NextIndex and PrevIndex return the images that Next and Prev would show.
func (lb *Lightbox) NextIndex() int {
	c := *lb
	c.Next()
	return c.Index
}

func (lb *Lightbox) PrevIndex() int {
	c := *lb
	c.Prev()
	return c.Index
}

// OpenAt shows the lightbox for the image at index, which is wrapped into range.
func (lb *Lightbox) OpenAt(index int) {
	if lb.n == 0 {
		return
	}
	lb.Index = ((index % lb.n) + lb.n) % lb.n
	lb.Open = true
}

// Prev moves to the preceding image, wrapping from first to last.
func (lb *Lightbox) Prev() {
	if lb.n > 0 {
		lb.Index = (lb.Index - 1 + lb.n) % lb.n
	}
}
