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

package pagination

// Indicator strip for a long sequence of slides.
// Beyond a small number of pages, only the extremes and a window around the current page
// are shown, with ellipses where pages are skipped.

// MaxDots is the number of pages shown individually before windowing is applied.
const MaxDots = 10

// Dot is one indicator: a page, or an ellipsis marking skipped pages.
type Dot struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// Strip is a complete indicator row, with first and last page buttons.
type Strip struct {
	Dots    []Dot
	Current int
	Last    int
	AtFirst bool // disable the "first" button
	AtLast  bool // disable the "last" button
}

// Label returns the 1-based number shown on a dot.
func (d Dot) Label() int {
	return d.Page + 1
}

// Pages returns the page sequence for totalPages and currentPage, with -1 for an ellipsis.
func Pages(totalPages int, currentPage int) []int {

	if totalPages <= 0 {
		return nil
	}
	currentPage = max(0, min(currentPage, totalPages-1))

	if totalPages <= MaxDots {
		ps := make([]int, totalPages)
		for i := range ps {
			ps[i] = i
		}
		return ps
	}

	const ellipsis = -1
	last := totalPages - 1

	// first page always
	ps := make([]int, 1, 9)

	switch {
	case currentPage <= 2:
		ps = append(ps, 1, 2, 3, 4, ellipsis, last)

	case currentPage >= totalPages-3:
		ps = append(ps, ellipsis, last-4, last-3, last-2, last-1, last)

	default:
		ps = append(ps, ellipsis, currentPage-1, currentPage, currentPage+1, ellipsis, last)
	}
	return ps
}

// Dots returns the indicators for totalPages and currentPage.
func Dots(totalPages int, currentPage int) []Dot {

	ps := Pages(totalPages, currentPage)
	currentPage = max(0, min(currentPage, totalPages-1))

	ds := make([]Dot, len(ps))
	for i, p := range ps {
		if p < 0 {
			ds[i] = Dot{Page: -1, Ellipsis: true}
		} else {
			ds[i] = Dot{Page: p, Current: p == currentPage}
		}
	}
	return ds
}

// New returns the indicator strip for totalPages and currentPage.
func New(totalPages int, currentPage int) *Strip {

	if totalPages <= 0 {
		return &Strip{AtFirst: true, AtLast: true}
	}
	currentPage = max(0, min(currentPage, totalPages-1))

	return &Strip{
		Dots:    Dots(totalPages, currentPage),
		Current: currentPage,
		Last:    totalPages - 1,
		AtFirst: currentPage == 0,
		AtLast:  currentPage == totalPages-1,
	}
}
