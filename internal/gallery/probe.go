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

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"inchworks.com/osisweb/internal/models"
)

// Prober checks that gallery images can be loaded from the host.
// Each request resolves independently, and a failure affects only its own image.
type Prober struct {
	Client  *http.Client
	Limit   int           // concurrent requests
	Timeout time.Duration // per request
}

// Probe returns the load status of each image's thumbnail and full-size versions.
// Images not resolved before ctx is done are left as loading.
func (p *Prober) Probe(ctx context.Context, images []*models.Image) Statuses {

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	var mu sync.Mutex
	st := make(Statuses, len(images))

	g, ctx := errgroup.WithContext(ctx)
	if p.Limit > 0 {
		g.SetLimit(p.Limit)
	}

	for _, img := range images {
		g.Go(func() error {
			ld := Loads{
				Thumbnail: p.check(ctx, client, img.ThumbnailURL),
				Full:      p.check(ctx, client, img.FullURL),
			}

			mu.Lock()
			st[img.Id] = ld
			mu.Unlock()
			return nil // a failed image must not cancel the others
		})
	}
	g.Wait()

	return st
}

// check requests one URL.
func (p *Prober) check(ctx context.Context, client *http.Client, url string) Status {

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return StatusFailed
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil && ctx.Err() != context.DeadlineExceeded {
			return StatusLoading // abandoned, not failed
		}
		return StatusFailed
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return StatusFailed
	}
	return StatusLoaded
}
