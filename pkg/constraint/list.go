package constraint

import (
	"math"
	"reflect"
)

// ListItem is one option of a List constraint.
type ListItem[T any] struct {
	// Text is the label a list controller displays.
	Text string
	// Value is the option value.
	Value T
}

// List maps values to one of an ordered set of options.
//
// A value equal to an option is returned unchanged. Otherwise, when Distance
// is set, the nearest option is chosen (ties go to the earlier option);
// without Distance the first option is chosen. An empty option set is the
// identity.
type List[T any] struct {
	Options []ListItem[T]
	// Equal compares values. Nil falls back to reflect.DeepEqual.
	Equal func(a, b T) bool
	// Distance measures how far apart two values are. Nil makes the list
	// discrete.
	Distance func(a, b T) float64
}

// NewList returns a discrete List for comparable values.
func NewList[T comparable](items []ListItem[T]) *List[T] {
	return &List[T]{
		Options: items,
		Equal:   func(a, b T) bool { return a == b },
	}
}

// NewNumberList returns a List that snaps numbers to the nearest option.
func NewNumberList[T Number](items []ListItem[T]) *List[T] {
	return &List[T]{
		Options: items,
		Equal:   func(a, b T) bool { return a == b },
		Distance: func(a, b T) float64 {
			return math.Abs(float64(a) - float64(b))
		},
	}
}

// Constrain returns the option matching v.
func (l *List[T]) Constrain(v T) T {
	if len(l.Options) == 0 {
		return v
	}
	eq := l.Equal
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	for _, item := range l.Options {
		if eq(item.Value, v) {
			return item.Value
		}
	}
	if l.Distance == nil {
		return l.Options[0].Value
	}

	best := 0
	bestDist := l.Distance(l.Options[0].Value, v)
	for i := 1; i < len(l.Options); i++ {
		if d := l.Distance(l.Options[i].Value, v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return l.Options[best].Value
}

// Kind returns KindList.
func (l *List[T]) Kind() Kind { return KindList }

// Values returns the option values in order.
func (l *List[T]) Values() []T {
	vs := make([]T, len(l.Options))
	for i, item := range l.Options {
		vs[i] = item.Value
	}
	return vs
}
