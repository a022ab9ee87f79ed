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
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var folderPages = map[string]string{
	"ROOT": `<html><body>
		<a href="https://drive.google.com/drive/folders/ROOT">this folder</a>
		<div class="flip-entry"><a href="https://drive.google.com/file/d/f1/view?usp=drive_web">1.jpg</a></div>
		<div class="flip-entry"><a href="https://drive.google.com/file/d/f-2_b/view?usp=drive_web">2.jpg</a></div>
		<div class="flip-entry"><a href="https://drive.google.com/file/d/f1/view?usp=drive_web">1.jpg again</a></div>
		<div class="flip-entry"><a href="https://drive.google.com/drive/folders/SUB">Sub</a></div>
	</body></html>`,
	"SUB": `<html><body>
		<a href="https://drive.google.com/file/d/f3/view">3.jpg</a>
		<a href="https://drive.google.com/drive/folders/ROOT">up</a>
		<a href="https://drive.google.com/drive/folders/BAD">broken</a>
	</body></html>`,
}

func folderServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := folderPages[r.URL.Query().Get("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(page))
	}))
}

func TestFolderID(t *testing.T) {
	id, err := FolderID("https://drive.google.com/drive/folders/1AbC_d-E?usp=sharing")
	require.NoError(t, err)
	assert.Equal(t, "1AbC_d-E", id)

	_, err = FolderID("https://drive.google.com/file/d/xyz/view")
	assert.ErrorIs(t, err, ErrFolderURL)
}

func TestExtractRecursive(t *testing.T) {
	srv := folderServer(t)
	defer srv.Close()

	ex := &Extractor{Client: srv.Client(), ViewURL: srv.URL + "/view?id=", Recursive: true}
	ids, err := ex.Extract(context.Background(), "https://drive.google.com/drive/folders/ROOT")
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f-2_b", "f3"}, ids)
}

func TestExtractFlat(t *testing.T) {
	srv := folderServer(t)
	defer srv.Close()

	ex := &Extractor{Client: srv.Client(), ViewURL: srv.URL + "/view?id="}
	ids, err := ex.Extract(context.Background(), "https://drive.google.com/drive/folders/ROOT")
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f-2_b"}, ids)
}

func TestExtractMissingFolder(t *testing.T) {
	srv := folderServer(t)
	defer srv.Close()

	ex := &Extractor{Client: srv.Client(), ViewURL: srv.URL + "/view?id="}
	_, err := ex.Extract(context.Background(), "https://drive.google.com/drive/folders/NONE")
	assert.Error(t, err)
}

func TestGalleryFile(t *testing.T) {
	dir := t.TempDir()

	// missing file leaves the gallery unconfigured
	ids, err := ReadIDs(filepath.Join(dir, "none.yml"))
	require.NoError(t, err)
	assert.Empty(t, ids)

	var buf bytes.Buffer
	require.NoError(t, WriteIDs(&buf, []string{"f1", "f3"}))
	assert.Contains(t, buf.String(), "images:")

	path := filepath.Join(dir, "gallery.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	ids, err = ReadIDs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f3"}, ids)

	require.NoError(t, os.WriteFile(path, []byte("images: [unclosed"), 0644))
	_, err = ReadIDs(path)
	assert.Error(t, err)
}
