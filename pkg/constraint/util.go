package constraint

import (
	"math"
	"strconv"
	"strings"
)

// BaseStep returns the step a number controller increments by: the step of
// the first Step constraint in c, or 1.
func BaseStep[T Number](c Constraint[T]) T {
	if s, ok := FindStep(c); ok && s.Step > 0 {
		return s.Step
	}
	return 1
}

// SuitableDecimalDigits returns how many fraction digits a number
// controller should display. A Step constraint decides when present;
// otherwise the raw value does, with a minimum of two digits.
func SuitableDecimalDigits[T Number](c Constraint[T], raw T) int {
	if s, ok := FindStep(c); ok && s.Step > 0 {
		return DecimalDigits(float64(s.Step))
	}
	return max(DecimalDigits(float64(raw)), 2)
}

// DecimalDigits returns the number of significant fraction digits of v,
// looking at most ten digits deep.
func DecimalDigits(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	text := strconv.FormatFloat(v, 'f', 10, 64)
	_, frac, ok := strings.Cut(text, ".")
	if !ok {
		return 0
	}
	return len(strings.TrimRight(frac, "0"))
}

// ListItems returns the options of the first List constraint in c, or nil.
func ListItems[T any](c Constraint[T]) []ListItem[T] {
	if l, ok := FindList(c); ok {
		return l.Options
	}
	return nil
}
