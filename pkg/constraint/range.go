package constraint

// Range clamps values to [Min, Max]. Either bound may be nil, in which case
// that side is left open.
//
// When both bounds are set and Min > Max, the value is clamped to Min first
// and then to Max, so every input maps to Max.
type Range[T Number] struct {
	Min *T
	Max *T
}

// NewRange returns a Range with both bounds set.
func NewRange[T Number](min, max T) *Range[T] {
	return &Range[T]{Min: &min, Max: &max}
}

// AtLeast returns a Range with only a lower bound.
func AtLeast[T Number](min T) *Range[T] {
	return &Range[T]{Min: &min}
}

// AtMost returns a Range with only an upper bound.
func AtMost[T Number](max T) *Range[T] {
	return &Range[T]{Max: &max}
}

// Constrain clamps v.
func (r *Range[T]) Constrain(v T) T {
	if r.Min != nil && v < *r.Min {
		v = *r.Min
	}
	if r.Max != nil && v > *r.Max {
		v = *r.Max
	}
	return v
}

// Kind returns KindRange.
func (r *Range[T]) Kind() Kind { return KindRange }

// Bounded reports whether both bounds are set.
func (r *Range[T]) Bounded() bool {
	return r.Min != nil && r.Max != nil
}
