// Package constraint provides the value constraints applied by knobs values.
//
// A constraint is a total, side-effect free function from T to T. Out of
// range or off-grid inputs are snapped or clamped, never rejected, and every
// constraint is idempotent:
//
//	c.Constrain(c.Constrain(v)) == c.Constrain(v)
//
// The variants form a closed set identified by [Kind]:
//
//   - [Step]: snaps to a multiple of a step relative to an origin.
//   - [Range]: clamps to optional lower and upper bounds.
//   - [List]: maps to an option of an ordered option set.
//   - [Composite]: applies a sequence of constraints left to right.
//
// Plugins build a Composite from declarative params and controllers inspect
// it with [Find] and the typed helpers [FindStep], [FindRange], [FindList].
package constraint

import "fmt"

// Kind tags a constraint variant.
type Kind int

const (
	// KindStep identifies a Step constraint.
	KindStep Kind = iota + 1
	// KindRange identifies a Range constraint.
	KindRange
	// KindList identifies a List constraint.
	KindList
	// KindComposite identifies a Composite constraint.
	KindComposite
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindRange:
		return "range"
	case KindList:
		return "list"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Constraint transforms a candidate value into an acceptable one.
type Constraint[T any] interface {
	// Constrain returns the constrained form of v.
	Constrain(v T) T
	// Kind returns the variant tag.
	Kind() Kind
}

// Number is the set of types numeric constraints operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Func adapts a plain function to a constraint of the given kind. It is
// mainly useful in tests and for host-specific snapping rules; the function
// must be idempotent.
type Func[T any] struct {
	K  Kind
	Fn func(T) T
}

// Constrain calls the wrapped function.
func (f Func[T]) Constrain(v T) T {
	if f.Fn == nil {
		return v
	}
	return f.Fn(v)
}

// Kind returns the configured kind.
func (f Func[T]) Kind() Kind { return f.K }
