package constraint

import "math"

// Step snaps values to the grid origin + n*step.
//
// A non-positive Step is treated as no constraint at all, so malformed
// params degrade to identity instead of failing.
type Step[T Number] struct {
	Step   T
	Origin T
}

// NewStep returns a Step constraint with the given step and a zero origin.
func NewStep[T Number](step T) *Step[T] {
	return &Step[T]{Step: step}
}

// Constrain rounds v to the nearest grid point. Halfway values round away
// from the origin. For integer types a grid point outside the range of T is
// replaced by its neighbour toward v.
func (s *Step[T]) Constrain(v T) T {
	if !(s.Step > 0) {
		return v
	}
	// Compute in float64 so unsigned types below the origin do not wrap.
	n := math.Round((float64(v) - float64(s.Origin)) / float64(s.Step))
	r := float64(s.Origin) + n*float64(s.Step)
	if math.IsNaN(r) {
		return v
	}
	if !representable[T](r) {
		// Fall back to the neighbouring grid point on the side of v.
		if r > float64(v) {
			r -= float64(s.Step)
		} else {
			r += float64(s.Step)
		}
		if !representable[T](r) {
			return v
		}
	}
	return T(r)
}

// representable reports whether r converts to T without overflow. Float
// types always qualify.
func representable[T Number](r float64) bool {
	half := 0.5
	if T(half) != 0 {
		return true
	}
	return float64(T(r)) == r
}

// Kind returns KindStep.
func (s *Step[T]) Kind() Kind { return KindStep }
