package main

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultCategoryTableOrder(t *testing.T) {
	table := DefaultCategoryTable()

	want := []string{"Underweight", "Normal Weight", "Overweight", "Obesity"}
	got := table.Categories()
	require.Len(t, got, len(want))
	for i, name := range want {
		assert.Equal(t, name, got[i].Name, "category %d", i)
	}

	assert.True(t, math.IsInf(got[len(got)-1].Upper, 1), "last category should be unbounded")
	assert.Equal(t, "built-in", table.Source())
}

func TestCategoryTableIsReadOnly(t *testing.T) {
	input := DefaultCategories()
	table, err := NewCategoryTable(input)
	require.NoError(t, err)

	input[0].Name = "Changed"
	got := table.Categories()
	got[1].Name = "Changed too"

	c, ok := table.Lookup("Underweight")
	assert.True(t, ok, "table changed through the input slice")
	assert.Equal(t, "Underweight", c.Name)
	assert.Equal(t, "Normal Weight", table.Categories()[1].Name, "table changed through the returned slice")
}

func TestNewCategoryTableValidation(t *testing.T) {
	rec := "See a professional."

	tests := []struct {
		name       string
		categories []Category
	}{
		{"empty", nil},
		{"missing name", []Category{{Name: " ", Lower: 0, Upper: 10, Recommendation: rec}}},
		{"duplicate name", []Category{
			{Name: "Low", Lower: 0, Upper: 10, Recommendation: rec},
			{Name: "Low", Lower: 11, Upper: 20, Recommendation: rec},
		}},
		{"inverted bounds", []Category{{Name: "Low", Lower: 10, Upper: 5, Recommendation: rec}}},
		{"nan bound", []Category{{Name: "Low", Lower: math.NaN(), Upper: 5, Recommendation: rec}}},
		{"missing recommendation", []Category{{Name: "Low", Lower: 0, Upper: 10}}},
		{"overlapping", []Category{
			{Name: "Low", Lower: 0, Upper: 20, Recommendation: rec},
			{Name: "High", Lower: 15, Upper: 30, Recommendation: rec},
		}},
		{"out of order", []Category{
			{Name: "High", Lower: 25, Upper: 30, Recommendation: rec},
			{Name: "Low", Lower: 0, Upper: 20, Recommendation: rec},
		}},
		{"unbounded before last", []Category{
			{Name: "Low", Lower: 0, Upper: math.Inf(1), Recommendation: rec},
			{Name: "High", Lower: 30, Upper: math.Inf(1), Recommendation: rec},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategoryTable(tt.categories)
			assert.ErrorIs(t, err, ErrInvalidCategoryTable)
		})
	}
}

// Bounds finer than the two displayed decimals: a value inside a range
// must get that range, not the one its rounded value would land in.
func TestClassifyFineGrainedBounds(t *testing.T) {
	rec := "r"
	table, err := NewCategoryTable([]Category{
		{Name: "Low", Lower: 0, Upper: 20, Recommendation: rec},
		{Name: "Fine", Lower: 20.001, Upper: 27, Recommendation: rec},
		{Name: "High", Lower: 27.001, Upper: math.Inf(1), Recommendation: rec},
	})
	require.NoError(t, err)

	tests := []struct {
		bmi  float64
		want string
	}{
		{20, "Low"},
		{20.001, "Fine"},
		{20.003, "Fine"},
		{20.0004, "Low"}, // between ranges, rounds to 20.00
		{26.999, "Fine"},
		{27.0004, "Fine"},
		{27.003, "High"},
	}

	for _, tt := range tests {
		got := table.Classify(tt.bmi)
		assert.Equal(t, tt.want, got.Name, "bmi %v", tt.bmi)
	}

	for bmi := 19.99; bmi < 27.02; bmi += 0.0007 {
		got := table.Classify(bmi)
		for _, c := range table.Categories() {
			if c.Contains(bmi) {
				assert.Equal(t, c.Name, got.Name, "bmi %v lies inside %s", bmi, c.Name)
				break
			}
		}
	}
}

func TestLoadCategoryTableFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")

	content := `categories:
  - name: Low
    lower: 0
    upper: 20
    recommendation: Eat more.
  - name: Fine
    lower: 20.01
    upper: 27
    recommendation: Keep going.
  - name: High
    lower: 27.01
    recommendation: Move more.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadCategoryTable(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Source())

	categories := table.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, "Low", categories[0].Name)
	assert.Equal(t, "High", categories[2].Name)
	assert.True(t, math.IsInf(categories[2].Upper, 1), "omitted upper should be unbounded")

	engine := NewEngine(table)
	assert.Equal(t, "Fine", engine.Classify(22).Name)
	assert.Equal(t, "High", engine.Classify(45).Name)
}

func TestLoadCategoryTableErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCategoryTable(filepath.Join(tmpDir, "nope.yaml"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: [name: {"), 0644))

		_, err := LoadCategoryTable(path)
		assert.ErrorIs(t, err, ErrInvalidCategoryTable)
	})

	t.Run("overlapping ranges", func(t *testing.T) {
		path := filepath.Join(tmpDir, "overlap.yaml")
		content := `categories:
  - name: A
    lower: 0
    upper: 25
    recommendation: a
  - name: B
    lower: 20
    recommendation: b
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadCategoryTable(path)
		assert.ErrorIs(t, err, ErrInvalidCategoryTable)
	})
}

func TestLoadCategoryTableEmptyPath(t *testing.T) {
	table, err := LoadCategoryTable("")
	require.NoError(t, err)
	assert.Equal(t, "built-in", table.Source())
}

// The --yaml dump must be loadable as an override file.
func TestCategoryTableYAMLDumpLoadsBack(t *testing.T) {
	data, err := yaml.Marshal(DefaultCategoryTable())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	table, err := LoadCategoryTable(path)
	require.NoError(t, err, "dumped table does not load:\n%s", data)

	assert.Equal(t, DefaultCategories(), table.Categories())
}
