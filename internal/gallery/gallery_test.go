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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inchworks.com/osisweb/internal/models"
)

func TestBuild(t *testing.T) {
	images, err := Build([]string{"abc", " ", "d_e-f"}, 0)
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, "abc", images[0].Id)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=abc&sz=w800", images[0].ThumbnailURL)
	assert.Equal(t, "https://drive.google.com/uc?id=abc&export=view", images[0].FullURL)
	assert.Equal(t, "d_e-f", images[1].Id)

	images, err = Build([]string{"x"}, 400)
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=x&sz=w400", images[0].ThumbnailURL)
}

func TestBuildNotConfigured(t *testing.T) {
	_, err := Build(nil, 0)
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	_, err = Build([]string{"", "  "}, 0)
	assert.ErrorIs(t, err, models.ErrNotConfigured)
}

func TestDeckWraps(t *testing.T) {
	images, err := Build([]string{"a", "b", "c"}, 0)
	require.NoError(t, err)

	d := NewDeck(images)
	assert.Equal(t, 0, d.Current)
	assert.Equal(t, 2, d.PrevIndex())
	assert.Equal(t, 0, d.Current, "PrevIndex must not move the deck")

	d.Prev()
	assert.Equal(t, 2, d.Current)
	d.Next()
	assert.Equal(t, 0, d.Current)

	d.GoTo(2)
	assert.Equal(t, 0, d.NextIndex())
	d.GoTo(7)
	assert.Equal(t, 0, d.Current)

	s := d.Strip()
	assert.True(t, s.AtFirst)
	assert.Len(t, s.Dots, 3)
}

func TestLightboxWraps(t *testing.T) {
	lb := NewLightbox(4)
	assert.False(t, lb.Open)

	lb.OpenAt(0)
	assert.True(t, lb.Open)
	lb.Prev()
	assert.Equal(t, 3, lb.Index)
	lb.Next()
	assert.Equal(t, 0, lb.Index)

	lb.OpenAt(3)
	assert.Equal(t, 0, lb.NextIndex())
	assert.Equal(t, 2, lb.PrevIndex())

	lb.OpenAt(-1)
	assert.Equal(t, 3, lb.Index)

	lb.Close()
	assert.False(t, lb.Open)
	assert.Equal(t, 3, lb.Index)

	// nothing to show
	empty := NewLightbox(0)
	empty.OpenAt(2)
	assert.False(t, empty.Open)
	empty.Next()
	assert.Equal(t, 0, empty.Index)
}

func TestStatusFallbacks(t *testing.T) {
	img := &models.Image{Id: "a", ThumbnailURL: "thumb", FullURL: "full"}

	st := Statuses{}
	assert.True(t, st.Loading(img))
	assert.Equal(t, "thumb", st.Thumbnail(img))
	assert.Equal(t, "full", st.Full(img))

	st["a"] = Loads{Thumbnail: StatusLoaded, Full: StatusFailed}
	assert.False(t, st.Loading(img))
	assert.Equal(t, "thumb", st.Full(img))

	st["a"] = Loads{Thumbnail: StatusFailed, Full: StatusFailed}
	assert.Equal(t, Placeholder, st.Thumbnail(img))
	assert.Equal(t, Placeholder, st.Full(img))

	st["a"] = Loads{Thumbnail: StatusFailed, Full: StatusLoaded}
	assert.Equal(t, "full", st.Full(img))
}
