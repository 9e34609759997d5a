package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNegative is returned when a quantity parses but is below zero.
var ErrNegative = errors.New("value must not be negative")

// ErrOutOfRange is returned when a quantity does not fit into an int.
var ErrOutOfRange = errors.New("value out of range")

// NormalizeDecimal trims the input and replaces a comma decimal separator with a dot.
// "12,5" becomes "12.5"; already dot-separated input is returned unchanged.
func NormalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

// ParseNumber parses a numeric token that may use a comma as decimal separator.
// It returns the value as an integer when the token has no fractional part
// (isInt is true), otherwise as a float.
func ParseNumber(s string) (i int64, f float64, isInt bool, err error) {
	norm := NormalizeDecimal(s)
	if norm == "" {
		return 0, 0, false, fmt.Errorf("empty number")
	}

	if !strings.Contains(norm, ".") {
		if i, err = strconv.ParseInt(norm, 10, 64); err == nil {
			return i, float64(i), true, nil
		}
	}

	f, err = strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, 0, false, fmt.Errorf("invalid number %q", s)
	}
	return 0, f, false, nil
}

// ParseQuantity converts a quantity cell into a non-negative integer.
// Spreadsheet exports write quantities as floats ("5.0"), so fractional
// values are truncated toward zero.
func ParseQuantity(s string) (int, error) {
	i, f, isInt, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	if i < 0 || f < 0 {
		return 0, ErrNegative
	}
	if !isInt {
		// float64(math.MaxInt) rounds up, so equality already overflows.
		if f >= float64(math.MaxInt) {
			return 0, ErrOutOfRange
		}
		i = int64(math.Trunc(f))
	}
	if i > math.MaxInt {
		return 0, ErrOutOfRange
	}
	return int(i), nil
}

// FormatNumber renders a float without trailing zeros ("12.5", "470").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
