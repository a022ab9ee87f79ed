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

package carousel

// Carousel of division cards, scrolled one card at a time.
// The number of cards in view, and the width of each, depend on the viewport width.

import (
	"strconv"
)

// DefaultWidth is the viewport width assumed until the browser reports one.
const DefaultWidth = 1280

// breakpoints (pixels)
const (
	widthSmall  = 480
	widthMedium = 768
	widthLarge  = 1024

	cardGap = 45 // margin between cards
)

// Carousel holds the scroll position over a fixed set of cards.
type Carousel struct {
	Index int // first card in view
	Total int // number of cards
	Width int // viewport width

	maxIndex int
}

// New returns a carousel for a set of cards, positioned at index and clamped for the viewport.
func New(total int, index int, width int) *Carousel {
	c := &Carousel{
		Index: index,
		Total: total,
		Width: width,
	}
	c.Update()
	return c
}

// CardWidth returns the horizontal step for one card, including the gap to the next.
func CardWidth(width int) int {
	switch {
	case width < widthSmall:
		return 280 + cardGap
	case width < widthMedium:
		return 300 + cardGap
	default:
		return 350 + cardGap
	}
}

// VisibleCards returns the number of cards in view.
func VisibleCards(width int) int {
	switch {
	case width < widthMedium:
		return 1
	case width < widthLarge:
		return 2
	default:
		return 3
	}
}

// AtEnd returns true if the "next" control should be disabled.
func (c *Carousel) AtEnd() bool {
	return c.Index >= c.maxIndex
}

// AtStart returns true if the "previous" control should be disabled.
func (c *Carousel) AtStart() bool {
	return c.Index == 0
}

// MaxIndex returns the highest index that still fills the view.
func (c *Carousel) MaxIndex() int {
	return c.maxIndex
}

// Next scrolls forward by one card, if not already at the end.
func (c *Carousel) Next() {
	if c.Index < c.maxIndex {
		c.Index++
		c.Update()
	}
}

// NextIndex returns the index that Next would move to.
func (c *Carousel) NextIndex() int {
	if c.Index < c.maxIndex {
		return c.Index + 1
	}
	return c.Index
}

// Offset returns the horizontal offset of the track, in pixels.
func (c *Carousel) Offset() int {
	return c.Index * CardWidth(c.Width)
}

// Prev scrolls back by one card, if not already at the start.
func (c *Carousel) Prev() {
	if c.Index > 0 {
		c.Index--
		c.Update()
	}
}

// PrevIndex returns the index that Prev would move to.
func (c *Carousel) PrevIndex() int {
	if c.Index > 0 {
		return c.Index - 1
	}
	return 0
}

// Resize changes the viewport width and reapplies the clamp.
// The index is reduced only as far as needed to fill the wider view.
func (c *Carousel) Resize(width int) {
	c.Width = width
	c.Update()
}

// SetTotalCards replaces the set of cards and returns to the first.
func (c *Carousel) SetTotalCards(n int) {
	c.Total = n
	c.Index = 0
	c.Update()
}

// Transform returns the CSS transform that positions the track.
func (c *Carousel) Transform() string {
	return "translateX(-" + strconv.Itoa(c.Offset()) + "px)"
}

// Update clamps the index to [0, max(0, total - visible)].
func (c *Carousel) Update() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}

	c.maxIndex = max(0, c.Total-VisibleCards(c.Width))
	c.Index = max(0, min(c.Index, c.maxIndex))
}
