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

package models

// Site data models for OsisWeb.
// Everything here is read-only once loaded, for the lifetime of a data refresh.

import (
	"errors"
	"strings"
)

const (
	// organisation datasets
	StructureOSIS = "OSIS"
	StructureMPK  = "MPK"

	// division prefixes
	PrefixSekbid = "Sekbid"
	PrefixKomisi = "Komisi"
)

var (
	ErrNoRecord      = errors.New("models: no matching record found")
	ErrNotConfigured = errors.New("models: no gallery images configured")
)

// Division is a sub-division of an organisation: a sekbid for OSIS or a komisi for MPK.
type Division struct {
	Id    string `yaml:"id"`
	Title string `yaml:"title"`
	Link  string `yaml:"link"`
	Logo  string `yaml:"logo"`
}

type Person struct {
	Name     string `yaml:"name"`
	Class    string `yaml:"class"`
	Position string `yaml:"position"`
	Image    string `yaml:"image"`
}

// Structure is one organisation dataset.
type Structure struct {
	Key        string      `yaml:"key"`
	Title      string      `yaml:"title"`
	Logo       string      `yaml:"logo"`
	Prefix     string      `yaml:"prefix"`
	Leadership []*Person   `yaml:"leadership"`
	Management []*Person   `yaml:"management"`
	Divisions  []*Division `yaml:"division"`
}

// Image is a gallery picture held in external storage.
type Image struct {
	Id           string
	ThumbnailURL string
	FullURL      string
}

type Activity struct {
	Year  string
	Title string
	Link  string
}

type ActivityYear struct {
	Year       string
	Activities []*Activity
}

// Name returns the page name for a division, from its link.
func (d *Division) Name() string {
	return strings.TrimSuffix(d.Link, ".html")
}

// Label returns a division's badge, e.g. "Sekbid 3".
func (d *Division) Label(prefix string) string {
	return prefix + " " + d.Id
}
