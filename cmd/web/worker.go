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

// Worker for background processing

import (
	"context"
	"time"
)

// worker does timer processing for OsisWeb: it refreshes activities and gallery images.
func (s *SiteState) worker(
	chRefresh <-chan time.Time,
	done <-chan bool) {

	// requests in progress are abandoned when done
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-done
		cancel()
	}()

	// refresh on restart
	s.onRefresh(ctx)

	for {
		select {

		case <-chRefresh:
			s.onRefresh(ctx)

		case <-done:
			return
		}
	}
}
