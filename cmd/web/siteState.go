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

// Processing related to site state

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"inchworks.com/osisweb/internal/activity"
	"inchworks.com/osisweb/internal/cache"
	"inchworks.com/osisweb/internal/gallery"
	"inchworks.com/osisweb/internal/models"
	"inchworks.com/osisweb/internal/structure"
)

type SiteState struct {
	app    *Application
	muSite sync.RWMutex

	// cached state
	structures *structure.Sets
	pages      *cache.PageCache

	images     []*models.Image
	galleryErr error // models.ErrNotConfigured, or a failure to read the gallery file
	statuses   gallery.Statuses

	activities  []*models.ActivityYear
	activityErr error

	refreshed time.Time
}

// Initialisation
func (s *SiteState) Init(a *Application) {
	s.app = a
}

// activitySource returns the activity file or URL, with a relative file in the site folder.
func (s *SiteState) activitySource() string {
	src := s.app.cfg.ActivitySource
	if src == "" || strings.Contains(src, "://") || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(SitePath, src)
}

// galleryIDs returns the configured image identifiers. The gallery file takes precedence over the configuration.
func (s *SiteState) galleryIDs() ([]string, error) {

	cfg := s.app.cfg
	if cfg.GalleryFile != "" {
		ids, err := gallery.ReadIDs(filepath.Join(SitePath, cfg.GalleryFile))
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			return ids, nil
		}
	}
	return cfg.GalleryIDs, nil
}

// loadImages reads the image list, without checking the images.
func (s *SiteState) loadImages() ([]*models.Image, error) {

	ids, err := s.galleryIDs()
	if err != nil {
		return nil, err
	}
	return gallery.Build(ids, s.app.cfg.ThumbnailWidth)
}

// mainMenu returns the menu for all pages.
func (s *SiteState) mainMenu() []*cache.MenuItem {

	defer s.updatesNone()()

	if s.pages == nil {
		return nil
	}
	return s.pages.MainMenu
}

// onRefresh reloads activities and images, and checks that the images can be loaded.
// Slow requests are made without holding the lock, so that pages can be served meanwhile.
func (s *SiteState) onRefresh(ctx context.Context) {

	a := s.app

	// activities
	fetchCtx, cancel := context.WithTimeout(ctx, a.cfg.TimeoutFetch)
	years, actErr := activity.Load(fetchCtx, a.client, s.activitySource())
	cancel()
	if actErr != nil {
		a.errorLog.Print(actErr)
	}

	// gallery
	images, galErr := s.loadImages()
	if galErr != nil && !errors.Is(galErr, models.ErrNotConfigured) {
		a.errorLog.Print(galErr)
	}

	// publish the lists, so that pages show images while they are checked
	s.setActivities(years, actErr)
	s.setImages(images, galErr)

	if !a.cfg.SkipImageChecks && len(images) > 0 {
		st := a.prober.Probe(ctx, images)

		defer s.updatesSite()()
		s.statuses = st
		s.refreshed = time.Now()

		failed := 0
		for _, ld := range st {
			if ld.Thumbnail == gallery.StatusFailed {
				failed++
			}
		}
		if failed > 0 {
			a.infoLog.Printf("%d of %d gallery images cannot be loaded", failed, len(images))
		}
	}
}

// setActivities replaces the activity groups.
// On failure, activities already loaded are kept.
func (s *SiteState) setActivities(years []*models.ActivityYear, err error) {

	defer s.updatesSite()()

	if err != nil && s.activities != nil {
		return
	}
	s.activities = years
	s.activityErr = err
}

// setImages replaces the gallery images. Statuses for images still listed are kept until rechecked.
func (s *SiteState) setImages(images []*models.Image, err error) {

	defer s.updatesSite()()

	s.images = images
	s.galleryErr = err

	st := make(gallery.Statuses, len(images))
	for _, img := range images {
		if ld, ok := s.statuses[img.Id]; ok {
			st[img.Id] = ld
		}
	}
	s.statuses = st
}

// setupCache loads the site files that change only on restart. It returns warnings for page names.
func (s *SiteState) setupCache() (warn []string, err error) {

	structures, err := structure.Load(filepath.Join(SitePath, "structure.yml"))
	if err != nil {
		return nil, err
	}

	pages, warn, err := cache.Load(SitePath)
	if err != nil {
		return nil, err
	}

	// image list is local, and shown until images have been checked
	images, galErr := s.loadImages()
	if galErr != nil && !errors.Is(galErr, models.ErrNotConfigured) {
		s.app.errorLog.Print(galErr)
	}

	defer s.updatesSite()()

	s.structures = structures
	s.pages = pages
	s.images = images
	s.galleryErr = galErr
	s.statuses = make(gallery.Statuses, len(images))
	return warn, nil
}

// Take mutex for update to site state
//
// Returns an anonymous function to be deferred. Call as: "defer updatesSite() ()".
func (s *SiteState) updatesSite() func() {

	// acquire exclusive lock
	s.muSite.Lock()

	return func() {
		s.muSite.Unlock()
	}
}

// Take mutex for non-updating request
func (s *SiteState) updatesNone() func() {

	// acquire shared lock
	s.muSite.RLock()

	return func() {
		s.muSite.RUnlock()
	}
}
