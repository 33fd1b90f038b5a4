package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// categoryFile is the on-disk layout of a category table override
type categoryFile struct {
	Categories []categoryDef `yaml:"categories"`
}

type categoryDef struct {
	Name           string   `yaml:"name"`
	Lower          float64  `yaml:"lower"`
	Upper          *float64 `yaml:"upper,omitempty"` // Pointer so an omitted bound means unbounded
	Recommendation string   `yaml:"recommendation"`
}

// LoadCategoryTable loads the category table from a YAML file.
// An empty path selects the built-in table.
func LoadCategoryTable(path string) (*CategoryTable, error) {
	if path == "" {
		return DefaultCategoryTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	table, err := parseCategoryTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table.source = path

	return table, nil
}

func parseCategoryTable(data []byte) (*CategoryTable, error) {
	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategoryTable, err)
	}

	categories := make([]Category, 0, len(file.Categories))
	for _, def := range file.Categories {
		upper := math.Inf(1)
		if def.Upper != nil {
			upper = *def.Upper
		}

		categories = append(categories, Category{
			Name:           def.Name,
			Lower:          def.Lower,
			Upper:          upper,
			Recommendation: def.Recommendation,
		})
	}

	return NewCategoryTable(categories)
}

// MarshalYAML renders the table in the same layout LoadCategoryTable reads
func (t *CategoryTable) MarshalYAML() (interface{}, error) {
	file := categoryFile{Categories: make([]categoryDef, 0, len(t.categories))}

	for _, c := range t.categories {
		def := categoryDef{
			Name:           c.Name,
			Lower:          c.Lower,
			Recommendation: c.Recommendation,
		}
		if !math.IsInf(c.Upper, 1) {
			upper := c.Upper
			def.Upper = &upper
		}
		file.Categories = append(file.Categories, def)
	}

	return file, nil
}
