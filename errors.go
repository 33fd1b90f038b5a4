package main

import (
	"errors"
	"fmt"
)

// Validation errors are recovered by the caller and shown as a message.
var (
	ErrNotANumber      = errors.New("not a number")
	ErrInvalidRange    = errors.New("value out of range")
	ErrUnknownCategory = errors.New("unknown category")
)

// ErrNonFiniteBMI is an ErrInvalidRange for positive inputs too extreme to
// give a finite BMI.
var ErrNonFiniteBMI = fmt.Errorf("%w: bmi is not finite", ErrInvalidRange)

// Storage errors wrap the underlying filesystem error.
var (
	ErrWriteFailed  = errors.New("history write failed")
	ErrReadFailed   = errors.New("history read failed")
	ErrDeleteFailed = errors.New("history delete failed")
)

// ErrInvalidCategoryTable reports a category table that cannot be used for lookup.
var ErrInvalidCategoryTable = errors.New("invalid category table")
