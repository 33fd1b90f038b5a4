package main

import "time"

// Category is a named BMI range with its advisory text.
// Both bounds are inclusive.
type Category struct {
	Name           string
	Lower          float64
	Upper          float64 // +Inf for the open-ended last range
	Recommendation string
}

// Contains reports whether bmi falls inside the inclusive range
func (c Category) Contains(bmi float64) bool {
	return c.Lower <= bmi && bmi <= c.Upper
}

// Result is the outcome of one BMI computation
type Result struct {
	WeightKg       float64
	HeightCm       float64
	BMI            float64
	Category       string
	Recommendation string
}

// Entry represents a single saved history record
type Entry struct {
	Timestamp time.Time
	WeightKg  float64
	HeightCm  float64
	BMI       float64
	Category  string
}

// NewEntry builds the history record for a computed result
func NewEntry(r Result, at time.Time) Entry {
	return Entry{
		Timestamp: at,
		WeightKg:  r.WeightKg,
		HeightCm:  r.HeightCm,
		BMI:       r.BMI,
		Category:  r.Category,
	}
}
