package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	r := Result{BMI: 22.857142857142858, Category: "Normal Weight", Recommendation: recommendNormal}

	got := FormatResult(r)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 3, "got %q", got)

	// BMI first, then category, then recommendation
	prefixes := []string{"Your BMI:", "Category:", "Recommendation:"}
	for i, prefix := range prefixes {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d: %q", i, lines[i])
	}
	assert.True(t, strings.HasSuffix(lines[0], " 22.86"), "BMI should have two decimals, got %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[2], recommendNormal), "got %q", lines[2])
}

func TestFormatResultMarkdown(t *testing.T) {
	r := Result{BMI: 41.522491349480966, Category: "Obesity", Recommendation: recommendObesity}

	want := "- **Your BMI:** **41.52**\n" +
		"- **Category:** **Obesity**\n" +
		"- **Recommendation:** *" + recommendObesity + "*\n"

	assert.Equal(t, want, FormatResultMarkdown(r))
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No BMI history yet.\n", FormatHistory(""))

	log := "Date: 2026-10-17 12:00:00\nWeight: 70.0 kg\nHeight: 175.0 cm\nBMI: 22.86\nCategory: Normal Weight\n\n"
	assert.Equal(t, log, FormatHistory(log), "history should be shown verbatim")
}

func TestFormatCategoryTable(t *testing.T) {
	got := FormatCategoryTable(DefaultCategoryTable())

	want := []string{
		"Underweight       0.0 - 18.4",
		"Normal Weight    18.5 - 24.9",
		"Overweight       25.0 - 29.9",
		"Obesity          30.0 and above",
	}
	for _, line := range want {
		assert.Contains(t, got, line)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not a number", fmt.Errorf("weight: %w: %q", ErrNotANumber, "abc"), InvalidInputMessage},
		{"not positive", fmt.Errorf("height: %w", ErrInvalidRange), invalidRangeMessage},
		{"no finite bmi", fmt.Errorf("%w: weight 1e300 kg", ErrNonFiniteBMI), nonFiniteBMIMessage},
		{"other", errors.New("disk on fire"), "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestErrorMessageForComputedInput(t *testing.T) {
	engine := NewEngine(DefaultCategoryTable())

	_, err := engine.Compute(1e300, 1e-300)
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, nonFiniteBMIMessage, ErrorMessage(err))

	_, err = engine.Compute(70, 0)
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, invalidRangeMessage, ErrorMessage(err))
}
