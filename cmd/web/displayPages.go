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

// Data for display pages

import (
	"errors"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"inchworks.com/osisweb/internal/accordion"
	"inchworks.com/osisweb/internal/activity"
	"inchworks.com/osisweb/internal/carousel"
	"inchworks.com/osisweb/internal/gallery"
	"inchworks.com/osisweb/internal/models"
	"inchworks.com/osisweb/internal/pagination"
)

// kegiatanState is the request state for the gallery and activities page.
type kegiatanState struct {
	slide   int
	photo   int  // valid if isPhoto
	isPhoto bool // lightbox open
	open    string
	isOpen  bool // accordion state specified
}

// DisplayDivision returns the page for a division.
func (s *SiteState) DisplayDivision(name string) (*DataDivision, error) {

	defer s.updatesNone()()

	div, st := s.structures.Division(name)
	if div == nil {
		return nil, models.ErrNoRecord
	}

	d := &DataDivision{
		Label:    div.Label(st.Prefix),
		Title:    div.Title,
		Logo:     div.Logo,
		BackHRef: structureHRef(st.Key, 0),
	}
	d.Meta.Title = d.Label + " - " + div.Title

	if pg := s.pages.Divisions[strings.ToLower(name)]; pg != nil {
		d.Body = pg.Body
		if pg.Title != "" {
			d.Meta.Title = pg.Title
		}
		d.Meta.Description = pg.Description
		d.Meta.NoIndex = pg.NoIndex
	}
	return d, nil
}

// DisplayHome returns the home page, with a preview of activities and the gallery.
func (s *SiteState) DisplayHome() *DataHome {

	defer s.updatesNone()()

	d := &DataHome{}
	for _, k := range s.structures.Order {
		st := s.structures.ByKey[k]
		d.Datasets = append(d.Datasets, &DataView{
			Key:   st.Key,
			Title: st.Title,
			Logo:  st.Logo,
			HRef:  structureHRef(st.Key, 0),
		})
	}

	// latest year of activities
	if n := len(s.activities); n > 0 {
		d.Latest = s.activities[n-1]
	} else {
		d.NoActivities = activity.MsgNone
	}

	// gallery preview
	if s.galleryErr != nil {
		d.GalleryMsg = galleryMessage(s.galleryErr)
	} else {
		n := max(0, min(len(s.images), s.app.cfg.HomeImages))
		for i, img := range s.images[:n] {
			d.Thumbnails = append(d.Thumbnails, &DataSlide{
				Index:     i,
				Src:       s.statuses.Thumbnail(img),
				Loading:   s.loading(img),
				HRef:      kegiatanHRef(kegiatanState{slide: i}),
				PhotoHRef: kegiatanHRef(kegiatanState{slide: i, photo: i, isPhoto: true}),
			})
		}
	}
	return d
}

// DisplayInfo returns an information page.
func (s *SiteState) DisplayInfo(name string) (*DataInfo, error) {

	defer s.updatesNone()()

	name, _ = url.PathUnescape(name)
	pg := s.pages.Info(name)
	if pg == nil {
		return nil, models.ErrNoRecord
	}

	d := &DataInfo{
		Title: pg.Title,
		Body:  pg.Body,
	}
	d.Meta = DataMeta{
		Title:       pg.Title,
		Description: pg.Description,
		NoIndex:     pg.NoIndex,
	}
	return d, nil
}

// DisplayKegiatan returns the gallery and activities page for the request state.
func (s *SiteState) DisplayKegiatan(ks kegiatanState) *DataKegiatan {

	defer s.updatesNone()()

	d := &DataKegiatan{}
	d.Meta.Title = "Kegiatan"

	// accordion of activity years, first expanded unless specified
	acc := accordion.Parse(len(s.activities), ks.open, ks.isOpen)
	ks.open = acc.Param()
	ks.isOpen = true

	// gallery
	if s.galleryErr != nil {
		d.GalleryMsg = galleryMessage(s.galleryErr)

	} else {
		deck := gallery.NewDeck(s.images)
		deck.GoTo(ks.slide)

		// lightbox follows the active slide
		lb := gallery.NewLightbox(len(s.images))
		if ks.isPhoto {
			lb.OpenAt(ks.photo)
			deck.GoTo(lb.Index)
		}
		ks.slide = deck.Current

		d.Number = deck.Current + 1
		d.Total = len(deck.Images)
		d.Slides = s.dataSlides(deck, ks)
		d.PrevHRef = kegiatanHRef(ks.withSlide(deck.PrevIndex()))
		d.NextHRef = kegiatanHRef(ks.withSlide(deck.NextIndex()))
		d.Strip = dataStrip(deck.Strip(), ks)

		if lb.Open {
			img := s.images[lb.Index]
			d.Lightbox = &DataLightbox{
				Src:       s.statuses.Full(img),
				Number:    lb.Index + 1,
				Total:     len(s.images),
				PrevHRef:  kegiatanHRef(ks.withPhoto(lb.PrevIndex())),
				NextHRef:  kegiatanHRef(ks.withPhoto(lb.NextIndex())),
				CloseHRef: kegiatanHRef(ks.withSlide(lb.Index)),
			}
		}
	}

	// activities
	if len(s.activities) == 0 {
		d.NoActivities = activity.MsgNone
	}
	for i, y := range s.activities {
		toggled := ks
		toggled.open = acc.ToggleParam(i)
		d.Years = append(d.Years, &DataYear{
			Year:       y.Year,
			Activities: y.Activities,
			Open:       acc.IsOpen(i),
			ToggleHRef: kegiatanHRef(toggled) + "#tahun-" + strconv.Itoa(i),
		})
	}

	return d
}

// DisplayStructure returns the structure page for a dataset, with the division carousel positioned for the viewport.
func (s *SiteState) DisplayStructure(view string, index int, width int) *DataStructure {

	defer s.updatesNone()()

	key := s.structures.Select(view)
	st := s.structures.ByKey[key]

	cs := carousel.New(len(st.Divisions), index, width)

	// cards are sized to match the step, so the track moves by whole cards
	track := "--card-step: " + strconv.Itoa(carousel.CardWidth(cs.Width)) + "px; transform: " + cs.Transform()

	d := &DataStructure{
		Title:      st.Title,
		Logo:       st.Logo,
		Prefix:     st.Prefix,
		Leadership: st.Leadership,
		Management: st.Management,
		Carousel:   cs,
		WidthKnown: width > 0,
		Track:      template.CSS(track),
		PrevHRef:   structureHRef(key, cs.PrevIndex()),
		NextHRef:   structureHRef(key, cs.NextIndex()),
	}
	d.Meta.Title = "Struktur " + st.Title

	for _, k := range s.structures.Order {
		other := s.structures.ByKey[k]
		d.Views = append(d.Views, &DataView{
			Key:      k,
			Title:    other.Title,
			HRef:     structureHRef(k, 0), // switching resets the carousel
			Selected: k == key,
		})
	}

	for _, div := range st.Divisions {
		d.Divisions = append(d.Divisions, &DataDivisionCard{
			Label: div.Label(st.Prefix),
			Title: div.Title,
			Logo:  div.Logo,
			HRef:  "/divisi/" + url.PathEscape(div.Name()),
		})
	}

	return d
}

// dataSlides returns the slides of a deck.
func (s *SiteState) dataSlides(deck *gallery.Deck, ks kegiatanState) []*DataSlide {

	slides := make([]*DataSlide, len(deck.Images))
	for i, img := range deck.Images {
		slides[i] = &DataSlide{
			Index:     i,
			Src:       s.statuses.Thumbnail(img),
			Loading:   s.loading(img),
			Active:    i == deck.Current,
			HRef:      kegiatanHRef(ks.withSlide(i)),
			PhotoHRef: kegiatanHRef(ks.withPhoto(i)),
		}
	}
	return slides
}

// dataStrip returns the pagination links for the gallery.
func dataStrip(strip *pagination.Strip, ks kegiatanState) *DataStrip {

	d := &DataStrip{
		FirstHRef: kegiatanHRef(ks.withSlide(0)),
		LastHRef:  kegiatanHRef(ks.withSlide(strip.Last)),
		AtFirst:   strip.AtFirst,
		AtLast:    strip.AtLast,
	}
	for _, dot := range strip.Dots {
		dd := &DataDot{Ellipsis: dot.Ellipsis, Current: dot.Current}
		if !dot.Ellipsis {
			dd.Label = dot.Label()
			dd.HRef = kegiatanHRef(ks.withSlide(dot.Page))
		}
		d.Dots = append(d.Dots, dd)
	}
	return d
}

// loading returns true if an image is still being checked.
func (s *SiteState) loading(img *models.Image) bool {
	return !s.app.cfg.SkipImageChecks && s.statuses.Loading(img)
}

// galleryMessage returns the error state shown instead of the gallery.
func galleryMessage(err error) string {
	if errors.Is(err, models.ErrNotConfigured) {
		return gallery.MsgNotConfigured
	}
	return gallery.MsgLoadFailed
}

// kegiatanHRef returns the address of the gallery and activities page for a state.
func kegiatanHRef(ks kegiatanState) string {

	q := url.Values{}
	if ks.slide != 0 {
		q.Set("slide", strconv.Itoa(ks.slide))
	}
	if ks.isPhoto {
		q.Set("photo", strconv.Itoa(ks.photo))
	}
	if ks.isOpen {
		q.Set("open", ks.open)
	}

	if len(q) == 0 {
		return "/kegiatan"
	}
	return "/kegiatan?" + q.Encode()
}

// structureHRef returns the address of the structure page for a dataset and carousel position.
// The dataset is in the path, so that it survives export to a static host.
func structureHRef(key string, index int) string {

	href := "/struktur/" + url.PathEscape(strings.ToLower(key))
	if index > 0 {
		href += "?i=" + strconv.Itoa(index)
	}
	return href
}

// withPhoto returns the state with the lightbox open at an image, which is also the active slide.
func (ks kegiatanState) withPhoto(i int) kegiatanState {
	ks.slide = i
	ks.photo = i
	ks.isPhoto = true
	return ks
}

// withSlide returns the state with a different active slide, and the lightbox closed.
func (ks kegiatanState) withSlide(i int) kegiatanState {
	ks.slide = i
	ks.isPhoto = false
	return ks
}
