package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Engine computes and classifies BMI against a fixed category table.
// It holds no state besides the table and has no side effects.
type Engine struct {
	table *CategoryTable
}

// NewEngine creates an Engine that classifies with table
func NewEngine(table *CategoryTable) *Engine {
	return &Engine{table: table}
}

// Table returns the category table the engine classifies with
func (e *Engine) Table() *CategoryTable {
	return e.table
}

// ParseMeasurement parses user-entered text as a finite real number
func ParseMeasurement(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return v, nil
}

// ComputeText parses weight (kg) and height (cm) text and computes the result
func (e *Engine) ComputeText(weightText, heightText string) (Result, error) {
	weight, err := ParseMeasurement(weightText)
	if err != nil {
		return Result{}, fmt.Errorf("weight: %w", err)
	}

	height, err := ParseMeasurement(heightText)
	if err != nil {
		return Result{}, fmt.Errorf("height: %w", err)
	}

	return e.Compute(weight, height)
}

// Compute returns BMI = weight / (height in meters)² with its category
// and recommendation. Weight and height must both be positive.
func (e *Engine) Compute(weightKg, heightCm float64) (Result, error) {
	if math.IsNaN(weightKg) || math.IsNaN(heightCm) {
		return Result{}, ErrNotANumber
	}
	if weightKg <= 0 {
		return Result{}, fmt.Errorf("%w: weight must be > 0, got %g", ErrInvalidRange, weightKg)
	}
	if heightCm <= 0 {
		return Result{}, fmt.Errorf("%w: height must be > 0, got %g", ErrInvalidRange, heightCm)
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return Result{}, fmt.Errorf("%w: weight %g kg and height %g cm give no finite BMI",
			ErrNonFiniteBMI, weightKg, heightCm)
	}

	category := e.Classify(bmi)

	return Result{
		WeightKg:       weightKg,
		HeightCm:       heightCm,
		BMI:            bmi,
		Category:       category.Name,
		Recommendation: category.Recommendation,
	}, nil
}

// Classify returns the first category in table order that holds bmi
func (e *Engine) Classify(bmi float64) Category {
	return e.table.Classify(bmi)
}

// Recommend returns the advisory text for a category name
func (e *Engine) Recommend(name string) (string, error) {
	category, ok := e.table.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return category.Recommendation, nil
}
