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

package cache

// Site pages written in markdown, and the menus that lead to them.
//
// Information pages are named for their menu entries: "Tentang.Visi_Misi.md" is item "Visi Misi"
// in dropdown "Tentang". A name starting with "." is a page without a menu entry.
// Division pages are named for the division's link, e.g. "sekbid1.md".

import (
	"bytes"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

const (
	pageSuffix = ".md"
	infoPrefix = "/info/"
)

type MenuItem struct {
	Name string
	Path string
	Sub  []*MenuItem
}

// Meta is page metadata, from optional YAML front matter.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	NoIndex     bool   `yaml:"noindex"`
}

type Page struct {
	Meta
	Path string
	Body template.HTML
}

type item struct {
	name string // string case as specified
	path string
	sub  map[string]*item
}

type PageCache struct {
	MainMenu []*MenuItem // top menu sorted

	Divisions map[string]*Page // division name -> page
	Infos     map[string]*Page // path -> information page

	mainMenu map[string]*item // top menu indexed
}

// '.' and '/' separate menu names.
// '_' is a space (typically in a file name)
var normaliser = strings.NewReplacer("/", ".", "_", " ")

var mdRenderer = html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})

// HTML sanitizer, for page content
var sanitizer = bluemonday.UGCPolicy()

var frontMatter = []byte("---")

// NewPageCache returns an empty page cache
func NewPageCache() *PageCache {
	return &PageCache{
		Divisions: make(map[string]*Page, 16),
		Infos:     make(map[string]*Page, 8),
		mainMenu:  make(map[string]*item, 8),
	}
}

// Load returns a cache of the pages in a site directory.
// Missing directories are allowed. It returns a list of warnings for unusable page names.
func Load(siteDir string) (pc *PageCache, warn []string, err error) {

	pc = NewPageCache()

	infos, err := readPages(filepath.Join(siteDir, "pages"))
	if err != nil {
		return nil, nil, err
	}
	for name, content := range infos {
		warn = append(warn, pc.AddPage(name, content)...)
	}

	divs, err := readPages(filepath.Join(siteDir, "divisions"))
	if err != nil {
		return nil, nil, err
	}
	for name, content := range divs {
		pc.AddDivision(name, content)
	}

	pc.BuildMenus()
	slices.Sort(warn)
	return
}

// AddDivision adds the detail page for a division.
func (pc *PageCache) AddDivision(name string, content []byte) {

	meta, md := splitMeta(content)
	pc.Divisions[strings.ToLower(name)] = &Page{
		Meta: meta,
		Path: "/divisi/" + url.PathEscape(strings.ToLower(name)),
		Body: toHTML(md),
	}
}

// AddPage adds an information page, optionally as a menu item.
// The name is the file name without its suffix. It returns a list of warnings.
func (pc *PageCache) AddPage(name string, content []byte) (warn []string) {

	path, es, isMenu, warn := toPathMenu(name)
	if len(warn) > 0 {
		return
	}
	path = infoPrefix + url.PathEscape(path)

	// add to menu
	if isMenu {
		warn = addMenu(es, path, pc.mainMenu, warn)
	}

	meta, md := splitMeta(content)
	if meta.Title == "" {
		meta.Title = es[len(es)-1] // last menu element
	}

	pc.Infos[path] = &Page{
		Meta: meta,
		Path: path,
		Body: toHTML(md),
	}
	return
}

// BuildMenus makes ordered lists of menu items.
func (pc *PageCache) BuildMenus() {
	pc.MainMenu = buildMenu(pc.mainMenu)
}

// Info returns an information page by name, as used in its address.
func (pc *PageCache) Info(name string) *Page {
	return pc.Infos[infoPrefix+url.PathEscape(name)]
}

// addMenu recursively adds page menu names to menu maps.
func addMenu(names []string, path string, to map[string]*item, warn []string) []string {

	name := names[0]
	ncb := strings.ToLower(name) // for case-blind index
	m, exists := to[ncb]

	if len(names) == 1 {
		// add leaf
		if exists {
			if m.path != "" {
				warn = append(warn, `Menu item "`+name+`" redefined`)
			} else {
				warn = append(warn, `Menu dropdown "`+name+`" replaced`)
			}
		}
		to[ncb] = &item{name: name, path: path}

	} else {
		// parent item
		if exists {
			if m.path != "" {
				warn = append(warn, `Menu dropdown replaces "`+name+`"`)

				// change parent to dropdown
				m.path = ""
				m.sub = make(map[string]*item, 3)
			}
		} else {
			m = &item{name: name, sub: make(map[string]*item, 3)}
			to[ncb] = m
		}
		warn = addMenu(names[1:], path, m.sub, warn)
	}
	return warn
}

// buildMenu recursively builds sorted menu lists from menu maps.
func buildMenu(from map[string]*item) (to []*MenuItem) {

	for _, it := range from {
		item := &MenuItem{Name: it.name, Path: it.path}
		to = append(to, item)

		if len(it.sub) > 0 {
			item.Sub = buildMenu(it.sub)
		}
	}

	slices.SortFunc(to, func(a, b *MenuItem) int {
		return strings.Compare(a.Name, b.Name)
	})
	return
}

// readPages returns the content of the markdown files in a directory, indexed by name without suffix.
func readPages(dir string) (map[string][]byte, error) {

	es, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	pages := make(map[string][]byte, len(es))
	for _, e := range es {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, pageSuffix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		pages[strings.TrimSuffix(name, pageSuffix)] = content
	}
	return pages, nil
}

// simplify returns a lower-case path with spaces and '-' characters replaced by single '-' characters.
func simplify(path string) string {
	var b strings.Builder
	var last rune

	for _, r := range path {
		r = unicode.ToLower(r)
		if r == ' ' {
			r = '-'
		}

		if r != '-' || r != last {
			b.WriteRune(r)
			last = r
		}
	}

	return b.String()
}

// splitMeta separates YAML front matter from markdown content.
// Unreadable front matter is treated as part of the content.
func splitMeta(content []byte) (meta Meta, md []byte) {

	if !bytes.HasPrefix(content, frontMatter) {
		return meta, content
	}

	rest := content[len(frontMatter):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatter...))
	if end < 0 {
		return meta, content
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return Meta{}, content
	}

	md = rest[end+1+len(frontMatter):]
	return meta, bytes.TrimLeft(md, "\r\n")
}

// toHTML converts markdown to HTML and sanitises it.
func toHTML(md []byte) template.HTML {
	mdParser := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)

	doc := mdParser.Parse(md)

	unsafe := markdown.Render(doc, mdRenderer)
	return template.HTML(sanitizer.SanitizeBytes(unsafe))
}

// toPathMenu makes a page address and menu elements from a page name.
func toPathMenu(name string) (path string, es []string, isMenu bool, warn []string) {

	// normalise menu item names
	name = normaliser.Replace(name)

	es = strings.Split(name, ".")
	isMenu = true

	for i, e := range es {

		// simplify whitespace
		e = strings.Join(strings.Fields(e), " ")

		if len(e) == 0 {
			if i == 0 && len(es) > 1 {
				isMenu = false // ".name" is a page without a menu item
			} else {
				warn = append(warn, `Blank element in "`+name+`"`)
				return
			}
		}
		es[i] = e
	}

	if isMenu {
		if len(es) > 2 {
			warn = append(warn, `"`+name+`" has too many elements`)
			return
		}
		path = strings.Join(es, ".")

	} else {
		es = es[1:]
		path = strings.Join(es, ".")
	}

	path = simplify(path)
	return
}
