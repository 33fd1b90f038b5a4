package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// InvalidInputMessage is shown when weight or height is not a number
const InvalidInputMessage = "Invalid input. Please enter valid numbers."

const invalidRangeMessage = "Invalid input. Weight and height must be greater than zero."

const nonFiniteBMIMessage = "Invalid input. Weight and height are too far apart to compute a BMI."

const emptyHistoryMessage = "No BMI history yet."

// FormatResult renders a result as plain terminal text
func FormatResult(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your BMI:        %.2f\n", r.BMI)
	fmt.Fprintf(&b, "Category:        %s\n", r.Category)
	fmt.Fprintf(&b, "Recommendation:  %s\n", r.Recommendation)
	return b.String()
}

// FormatResultMarkdown renders a result with bold values and an italic
// recommendation
func FormatResultMarkdown(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **Your BMI:** **%.2f**\n", r.BMI)
	fmt.Fprintf(&b, "- **Category:** **%s**\n", r.Category)
	fmt.Fprintf(&b, "- **Recommendation:** *%s*\n", r.Recommendation)
	return b.String()
}

// FormatHistory returns the log text, or a placeholder for an empty log
func FormatHistory(log string) string {
	if log == "" {
		return emptyHistoryMessage + "\n"
	}
	return log
}

// FormatCategoryTable renders the ranges one per line
func FormatCategoryTable(t *CategoryTable) string {
	var b strings.Builder
	for _, c := range t.Categories() {
		if math.IsInf(c.Upper, 1) {
			fmt.Fprintf(&b, "   %-15s %5.1f and above\n", c.Name, c.Lower)
			continue
		}
		fmt.Fprintf(&b, "   %-15s %5.1f - %.1f\n", c.Name, c.Lower, c.Upper)
	}
	return b.String()
}

// ErrorMessage turns an error into the text shown to the user
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotANumber):
		return InvalidInputMessage
	case errors.Is(err, ErrNonFiniteBMI):
		return nonFiniteBMIMessage
	case errors.Is(err, ErrInvalidRange):
		return invalidRangeMessage
	default:
		return err.Error()
	}
}
