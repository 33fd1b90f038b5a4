package main

import (
	"fmt"
	"math"
	"strings"
)

const builtinSource = "built-in"

// Advisory texts for the built-in categories
const (
	recommendUnderweight = "You should consider gaining some weight. Consult a nutritionist for a proper diet plan."
	recommendNormal      = "Congratulations! You are in a healthy weight range."
	recommendOverweight  = "You should consider losing some weight through a combination of diet and exercise. Consult a healthcare professional."
	recommendObesity     = "Immediate weight loss is recommended. Consult a healthcare professional for a personalized weight loss plan."
)

// DefaultCategories returns the built-in ranges in lookup order
func DefaultCategories() []Category {
	return []Category{
		{Name: "Underweight", Lower: 0, Upper: 18.4, Recommendation: recommendUnderweight},
		{Name: "Normal Weight", Lower: 18.5, Upper: 24.9, Recommendation: recommendNormal},
		{Name: "Overweight", Lower: 25, Upper: 29.9, Recommendation: recommendOverweight},
		{Name: "Obesity", Lower: 30, Upper: math.Inf(1), Recommendation: recommendObesity},
	}
}

// CategoryTable is an ordered, read-only list of categories.
// Lookup walks it front to back, so order decides which range wins.
type CategoryTable struct {
	categories []Category
	source     string
}

// NewCategoryTable validates categories and copies them into a table
func NewCategoryTable(categories []Category) (*CategoryTable, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	owned := make([]Category, len(categories))
	copy(owned, categories)

	return &CategoryTable{categories: owned, source: builtinSource}, nil
}

// DefaultCategoryTable returns the table built from DefaultCategories
func DefaultCategoryTable() *CategoryTable {
	table, err := NewCategoryTable(DefaultCategories())
	if err != nil {
		panic(err)
	}
	return table
}

// Categories returns a copy of the categories in lookup order
func (t *CategoryTable) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Source names where the table came from: "built-in" or a file path
func (t *CategoryTable) Source() string {
	return t.source
}

// Lookup finds a category by name
func (t *CategoryTable) Lookup(name string) (Category, bool) {
	for _, c := range t.categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Classify returns the first category whose range contains bmi.
//
// Inclusive bounds such as 18.4/18.5 leave gaps. A value in a gap is
// rounded to the two decimals users see and placed again; if it still
// falls between ranges it belongs to the next range up, and a value below
// the first range to the first one.
func (t *CategoryTable) Classify(bmi float64) Category {
	for _, c := range t.categories {
		if c.Contains(bmi) {
			return c
		}
	}

	v := roundBMI(bmi)
	for _, c := range t.categories {
		if c.Contains(v) || v < c.Lower {
			return c
		}
	}

	return t.categories[len(t.categories)-1]
}

func validateCategories(categories []Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: no categories defined", ErrInvalidCategoryTable)
	}

	seen := make(map[string]bool)
	for i, c := range categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: category %d has no name", ErrInvalidCategoryTable, i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCategoryTable, c.Name)
		}
		seen[c.Name] = true

		if math.IsNaN(c.Lower) || math.IsNaN(c.Upper) {
			return fmt.Errorf("%w: %q has a NaN bound", ErrInvalidCategoryTable, c.Name)
		}
		if c.Lower > c.Upper {
			return fmt.Errorf("%w: %q lower bound %g is above upper bound %g",
				ErrInvalidCategoryTable, c.Name, c.Lower, c.Upper)
		}
		if strings.TrimSpace(c.Recommendation) == "" {
			return fmt.Errorf("%w: %q has no recommendation", ErrInvalidCategoryTable, c.Name)
		}

		if i > 0 {
			prev := categories[i-1]
			if c.Lower <= prev.Upper {
				return fmt.Errorf("%w: %q overlaps or precedes %q",
					ErrInvalidCategoryTable, c.Name, prev.Name)
			}
		}
	}

	return nil
}

// roundBMI rounds to the two decimals shown in results and the history log
func roundBMI(bmi float64) float64 {
	return math.Round(bmi*100) / 100
}
