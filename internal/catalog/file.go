package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoPages is returned when a catalog file lists no pages.
var ErrNoPages = errors.New("catalog has no pages")

// File is the on-disk form of a catalog.
type File struct {
	DefaultIndex int        `yaml:"default_index"`
	Pages        []PageSpec `yaml:"pages"`
}

// PageSpec describes a single page.
type PageSpec struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading catalog: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a YAML catalog.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Pages) == 0 {
		return File{}, ErrNoPages
	}
	for i, p := range f.Pages {
		if p.Title == "" {
			return File{}, fmt.Errorf("page %d: missing title", i)
		}
	}
	return f, nil
}

// Default is the catalog used when no file is given.
func Default() File {
	fruits := []string{
		"Pineapple", "Apple", "Mango", "Pear", "Banana", "Tangerine",
		"Cantaloupe", "Watermelon", "Grape", "Orange", "Pomelo",
	}
	f := File{Pages: make([]PageSpec, len(fruits))}
	for i, fruit := range fruits {
		f.Pages[i] = PageSpec{
			Title: fruit,
			Body: fmt.Sprintf(
				"%s\n\nThis is page %d of %d. Drag left or right to move between pages, or pick a tab above to jump straight to it. Every page keeps a record of when it appears and disappears, shown at the bottom of the screen.",
				fruit, i+1, len(fruits),
			),
		}
	}
	return f
}
