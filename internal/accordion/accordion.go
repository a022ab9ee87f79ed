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

package accordion

// Expanding sections. Each section toggles independently, and any number may be open.
//
// The state is carried between requests as a list of open section indexes, e.g. "0,2".

import (
	"slices"
	"strconv"
	"strings"
)

type Accordion struct {
	open []bool
}

// New returns the initial state for n sections, with the first one expanded.
func New(n int) *Accordion {
	a := &Accordion{open: make([]bool, n)}
	if n > 0 {
		a.open[0] = true
	}
	return a
}

// Parse returns the state from a request parameter.
// If the parameter is absent, the state is initialised. Invalid indexes are ignored.
func Parse(n int, param string, present bool) *Accordion {

	if !present {
		return New(n)
	}

	a := &Accordion{open: make([]bool, n)}
	for _, s := range strings.Split(param, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && i >= 0 && i < n {
			a.open[i] = true
		}
	}
	return a
}

// IsOpen returns true if section i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return i >= 0 && i < len(a.open) && a.open[i]
}

// Len returns the number of sections.
func (a *Accordion) Len() int {
	return len(a.open)
}

// Param returns the state as a request parameter.
func (a *Accordion) Param() string {
	var ss []string
	for i, o := range a.open {
		if o {
			ss = append(ss, strconv.Itoa(i))
		}
	}
	return strings.Join(ss, ",")
}

// Toggle expands or collapses section i, leaving the others unchanged.
func (a *Accordion) Toggle(i int) {
	if i >= 0 && i < len(a.open) {
		a.open[i] = !a.open[i]
	}
}

// ToggleParam returns the request parameter for the state after toggling section i.
func (a *Accordion) ToggleParam(i int) string {
	t := &Accordion{open: slices.Clone(a.open)}
	t.Toggle(i)
	return t.Param()
}
