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

// Gallery identifier file, as written by the folder extractor.

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML list of image identifiers.
type File struct {
	Images []string `yaml:"images"`
}

// ReadIDs returns the identifiers from a gallery file.
// A missing file is not an error: it leaves the gallery unconfigured.
func ReadIDs(path string) ([]string, error) {

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("gallery file %s: %w", path, err)
	}
	return f.Images, nil
}

// WriteIDs writes identifiers as a gallery file.
func WriteIDs(w io.Writer, ids []string) error {

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&File{Images: ids}); err != nil {
		return err
	}
	return enc.Close()
}
