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

package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"inchworks.com/osisweb/internal/models"
)

// Default is the dataset shown when none is requested.
const Default = models.StructureOSIS

// Sets holds the organisation datasets, in display order.
type Sets struct {
	Order []string
	ByKey map[string]*models.Structure
}

// file is the format of a site's structure file.
type file struct {
	Structures []*models.Structure `yaml:"structures"`
}

// Defaults returns the built-in datasets.
func Defaults() *Sets {
	return newSets(osis(), mpk())
}

// Load returns the datasets from a structure file, replacing the built-in ones with the same key.
// A missing file is not an error.
func Load(path string) (*Sets, error) {

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	} else if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("structure file %s: %w", path, err)
	}

	ss := Defaults()
	for _, s := range f.Structures {
		s.Key = strings.ToUpper(strings.TrimSpace(s.Key))
		if s.Key == "" {
			return nil, fmt.Errorf("structure file %s: dataset without a key", path)
		}
		if s.Prefix == "" {
			s.Prefix = prefix(s.Key)
		}

		if _, exists := ss.ByKey[s.Key]; !exists {
			ss.Order = append(ss.Order, s.Key)
		}
		ss.ByKey[s.Key] = s
	}
	return ss, nil
}

// Division returns the division with the specified page name, and its dataset.
func (ss *Sets) Division(name string) (*models.Division, *models.Structure) {
	for _, k := range ss.Order {
		s := ss.ByKey[k]
		for _, d := range s.Divisions {
			if d.Name() == name {
				return d, s
			}
		}
	}
	return nil, nil
}

// Select returns the dataset key for a view request, or the default if the view is absent or unknown.
func (ss *Sets) Select(view string) string {
	k := strings.ToUpper(strings.TrimSpace(view))
	if _, ok := ss.ByKey[k]; ok {
		return k
	}
	return Default
}

func newSets(structures ...*models.Structure) *Sets {
	ss := &Sets{ByKey: make(map[string]*models.Structure, len(structures))}
	for _, s := range structures {
		ss.Order = append(ss.Order, s.Key)
		ss.ByKey[s.Key] = s
	}
	return ss
}

// prefix returns the division label for a dataset.
func prefix(key string) string {
	if key == models.StructureOSIS {
		return models.PrefixSekbid
	}
	return models.PrefixKomisi
}
