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

package activity

// Activities of the organisation, from a pipe-delimited list of "year|title|link" lines.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inchworks.com/osisweb/internal/models"
)

// MsgNone is shown when the activities cannot be loaded.
const MsgNone = "Tidak ada kegiatan tersedia"

// Parse reads activities, one per line. Lines without a year, title and link are dropped.
func Parse(r io.Reader) ([]*models.Activity, error) {

	var acts []*models.Activity

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fs := strings.Split(sc.Text(), "|")
		if len(fs) < 3 {
			continue
		}

		a := &models.Activity{
			Year:  strings.TrimSpace(fs[0]),
			Title: strings.TrimSpace(fs[1]),
			Link:  strings.TrimSpace(fs[2]),
		}
		if a.Year == "" || a.Title == "" || a.Link == "" {
			continue
		}
		acts = append(acts, a)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return acts, nil
}

// Group sorts activities by title and groups them by year, in ascending order of year.
func Group(acts []*models.Activity) []*models.ActivityYear {

	sorted := slices.Clone(acts)
	col := collate.New(language.Indonesian, collate.IgnoreCase)
	slices.SortStableFunc(sorted, func(a, b *models.Activity) int {
		return col.CompareString(a.Title, b.Title)
	})

	byYear := make(map[string]*models.ActivityYear)
	var years []*models.ActivityYear

	for _, a := range sorted {
		y := byYear[a.Year]
		if y == nil {
			y = &models.ActivityYear{Year: a.Year}
			byYear[a.Year] = y
			years = append(years, y)
		}
		y.Activities = append(y.Activities, a)
	}

	slices.SortFunc(years, func(a, b *models.ActivityYear) int {
		return strings.Compare(a.Year, b.Year)
	})
	return years
}

// Load fetches activities from a file path or an http(s) URL, and returns them grouped by year.
func Load(ctx context.Context, client *http.Client, source string) ([]*models.ActivityYear, error) {

	rc, err := open(ctx, client, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	acts, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("reading activities from %s: %w", source, err)
	}
	return Group(acts), nil
}

// open returns a reader for a local or remote source.
func open(ctx context.Context, client *http.Client, source string) (io.ReadCloser, error) {

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.Open(source)
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching activities: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching activities: %s", resp.Status)
	}
	return resp.Body, nil
}
