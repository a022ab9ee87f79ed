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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpoints(t *testing.T) {
	tests := []struct {
		width   int
		visible int
		card    int
	}{
		{320, 1, 325},
		{479, 1, 325},
		{480, 1, 345},
		{767, 1, 345},
		{768, 2, 395},
		{1023, 2, 395},
		{1024, 3, 395},
		{1920, 3, 395},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.visible, VisibleCards(tt.width), "visible cards at %d", tt.width)
		assert.Equal(t, tt.card, CardWidth(tt.width), "card width at %d", tt.width)
	}
}

func TestNavigation(t *testing.T) {
	c := New(8, 0, 1280)

	assert.True(t, c.AtStart())
	assert.False(t, c.AtEnd())
	assert.Equal(t, 5, c.MaxIndex())

	c.Prev()
	assert.Equal(t, 0, c.Index, "prev at start")

	for i := 0; i < 10; i++ {
		c.Next()
	}
	assert.Equal(t, 5, c.Index)
	assert.True(t, c.AtEnd())
	assert.Equal(t, 5, c.NextIndex())
	assert.Equal(t, 4, c.PrevIndex())
	assert.Equal(t, "translateX(-1975px)", c.Transform())

	c.Prev()
	assert.Equal(t, 4, c.Index)
	assert.False(t, c.AtEnd())
}

func TestClampOnResize(t *testing.T) {
	// narrow view, scrolled to the last card
	c := New(5, 4, 500)
	assert.Equal(t, 4, c.Index)

	// wider view shows more cards, so the index must come back only as far as needed
	c.Resize(900)
	assert.Equal(t, 3, c.Index)
	c.Resize(1200)
	assert.Equal(t, 2, c.Index)

	// narrowing again keeps the position
	c.Resize(400)
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, 2*325, c.Offset())
}

func TestClampInvariant(t *testing.T) {
	widths := []int{0, 300, 600, 800, 1100}

	for total := 0; total <= 9; total++ {
		for index := -3; index <= 12; index++ {
			for _, w := range widths {
				c := New(total, index, w)
				hi := max(0, total-VisibleCards(c.Width))
				assert.GreaterOrEqual(t, c.Index, 0)
				assert.LessOrEqual(t, c.Index, hi)

				c.Next()
				assert.LessOrEqual(t, c.Index, hi)
				c.Prev()
				assert.GreaterOrEqual(t, c.Index, 0)
			}
		}
	}
}

func TestSetTotalCards(t *testing.T) {
	c := New(8, 4, 1280)
	assert.Equal(t, 4, c.Index)

	c.SetTotalCards(5)
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, 2, c.MaxIndex())

	// fewer cards than the view holds
	c.SetTotalCards(2)
	assert.True(t, c.AtStart())
	assert.True(t, c.AtEnd())
	assert.Equal(t, "translateX(-0px)", c.Transform())
}
