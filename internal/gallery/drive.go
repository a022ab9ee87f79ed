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

// Extraction of image IDs from a shared Google Drive folder.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"

	"golang.org/x/net/html"
)

const folderViewURL = "https://drive.google.com/embeddedfolderview?id="

var (
	ErrFolderURL = errors.New("gallery: not a Google Drive folder URL")

	reFile   = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)/`)
	reFolder = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
)

// Extractor lists the files in a public Drive folder.
type Extractor struct {
	Client    *http.Client
	InfoLog   *log.Logger
	ViewURL   string // folder view prefix, defaults to Drive's embedded view
	Recursive bool
}

// FolderID returns the folder identifier from a folder URL such as
// https://drive.google.com/drive/folders/<id>.
func FolderID(folderURL string) (string, error) {
	m := reFolder.FindStringSubmatch(folderURL)
	if m == nil {
		return "", ErrFolderURL
	}
	return m[1], nil
}

// Extract returns the file IDs in a folder, and in its sub-folders if recursive.
// A sub-folder that cannot be read is logged and skipped.
func (ex *Extractor) Extract(ctx context.Context, folderURL string) ([]string, error) {

	id, err := FolderID(folderURL)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	return ex.folder(ctx, id, 0, visited)
}

// folder processes one folder.
func (ex *Extractor) folder(ctx context.Context, id string, depth int, visited map[string]bool) ([]string, error) {

	visited[id] = true
	ex.logf(depth, "Processing folder: %s", id)

	files, folders, err := ex.list(ctx, id)
	if err != nil {
		return nil, err
	}
	ex.logf(depth, "Found %d files", len(files))

	if !ex.Recursive {
		return files, nil
	}

	for _, sub := range folders {
		if visited[sub] {
			continue
		}

		fs, err := ex.folder(ctx, sub, depth+1, visited)
		if err != nil {
			ex.logf(depth+1, "Error: %v", err)
			continue
		}
		files = append(files, fs...)
	}
	return files, nil
}

// list fetches the folder view and returns the file and sub-folder IDs, without duplicates.
func (ex *Extractor) list(ctx context.Context, id string) (files []string, folders []string, err error) {

	client := ex.Client
	if client == nil {
		client = http.DefaultClient
	}
	view := ex.ViewURL
	if view == "" {
		view = folderViewURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, view+id, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching folder %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetching folder %s: %s", id, resp.Status)
	}

	hrefs, err := links(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing folder %s: %w", id, err)
	}

	seenFile := make(map[string]bool)
	seenFolder := map[string]bool{id: true} // not the folder itself

	for _, href := range hrefs {
		if m := reFile.FindStringSubmatch(href); m != nil && !seenFile[m[1]] {
			seenFile[m[1]] = true
			files = append(files, m[1])

		} else if m := reFolder.FindStringSubmatch(href); m != nil && !seenFolder[m[1]] {
			seenFolder[m[1]] = true
			folders = append(folders, m[1])
		}
	}
	return
}

func (ex *Extractor) logf(depth int, format string, v ...any) {
	if ex.InfoLog == nil {
		return
	}
	indent := fmt.Sprintf("%*s", depth*2, "")
	ex.InfoLog.Printf(indent+format, v...)
}

// links returns the link targets in an HTML document, in document order.
func links(r io.Reader) ([]string, error) {

	var hrefs []string
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return hrefs, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					hrefs = append(hrefs, string(val))
				}
				if !more {
					break
				}
			}
		}
	}
}
