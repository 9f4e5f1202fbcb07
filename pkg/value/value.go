// Package value provides the reactive value container shared by bindings
// and controllers.
//
// A [Value] holds the current typed value of a control. Every write passes
// through the value's constraint, and writes that do not change the value
// (by the value's equality predicate) are suppressed. Accepted writes emit a
// [ChangeEvent] synchronously, in subscription order, before the write
// returns:
//
//	v := value.NewComparable(0.0, value.WithConstraint[float64](constraint.NewRange(0.0, 255.0)))
//	unsubscribe := v.OnChange(func(ev value.ChangeEvent[float64]) {
//	    fmt.Println(ev.RawValue)
//	})
//	v.SetRawValue(300) // prints 255
//	unsubscribe()
//
// Values are not safe for concurrent use. Hosts that mutate bound data from
// other goroutines hand the mutation to the goroutine that owns the values
// (see poll.Poller.Dispatch).
//
// [Connect] links two values in both directions and [ValueMap] groups
// named values used as view props.
package value

import (
	"reflect"

	"github.com/go-knobs/knobs/pkg/constraint"
)

// SetOptions modifies a single write.
type SetOptions struct {
	// ForceEmit emits a change event even if the value did not change.
	ForceEmit bool
	// Last marks the final write of an interaction. Controllers clear it
	// for intermediate writes such as slider drags.
	Last bool
}

// DefaultSetOptions are the options used by SetRawValue.
var DefaultSetOptions = SetOptions{Last: true}

// ChangeEvent is delivered to subscribers after an accepted write.
type ChangeEvent[T any] struct {
	Sender   *Value[T]
	RawValue T
	Options  SetOptions
}

// Option configures a Value.
type Option[T any] func(*Value[T])

// WithConstraint attaches a constraint.
func WithConstraint[T any](c constraint.Constraint[T]) Option[T] {
	return func(v *Value[T]) {
		v.constraint = c
	}
}

// WithEqual sets the equality predicate used to suppress redundant writes.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(v *Value[T]) {
		if eq != nil {
			v.equal = eq
		}
	}
}

// Value is a constrained, observable value.
type Value[T any] struct {
	raw        T
	constraint constraint.Constraint[T]
	equal      func(a, b T) bool
	emitter    Emitter[ChangeEvent[T]]
	disposed   bool
}

// New creates a Value holding initial. Without WithEqual, values are
// compared with reflect.DeepEqual. The initial value is constrained.
func New[T any](initial T, opts ...Option[T]) *Value[T] {
	v := &Value[T]{
		equal: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(v)
	}
	v.raw = v.constrain(initial)
	return v
}

// NewComparable creates a Value compared with ==.
func NewComparable[T comparable](initial T, opts ...Option[T]) *Value[T] {
	opts = append([]Option[T]{WithEqual(func(a, b T) bool { return a == b })}, opts...)
	return New(initial, opts...)
}

func (v *Value[T]) constrain(x T) T {
	if v.constraint == nil {
		return x
	}
	return v.constraint.Constrain(x)
}

// RawValue returns the current value.
func (v *Value[T]) RawValue() T {
	return v.raw
}

// SetRawValue writes x with DefaultSetOptions.
func (v *Value[T]) SetRawValue(x T) {
	v.SetRawValueWith(x, DefaultSetOptions)
}

// SetRawValueWith constrains x and stores it. If the result differs from
// the current value, or opts.ForceEmit is set, a change event is emitted
// to every subscriber before the call returns.
func (v *Value[T]) SetRawValueWith(x T, opts SetOptions) {
	next := v.constrain(x)
	if !opts.ForceEmit && v.equal(v.raw, next) {
		return
	}
	v.raw = next
	if v.disposed {
		return
	}
	v.emitter.Emit(ChangeEvent[T]{Sender: v, RawValue: next, Options: opts})
}

// Constraint returns the attached constraint, or nil.
func (v *Value[T]) Constraint() constraint.Constraint[T] {
	return v.constraint
}

// Equal compares a and b with the value's equality predicate.
func (v *Value[T]) Equal(a, b T) bool {
	return v.equal(a, b)
}

// OnChange subscribes fn to change events and returns an unsubscribe
// function. Subscribing to a disposed value returns a no-op.
func (v *Value[T]) OnChange(fn func(ChangeEvent[T])) func() {
	if v.disposed {
		return func() {}
	}
	return v.emitter.On(fn)
}

// ListenerCount returns the number of subscribers.
func (v *Value[T]) ListenerCount() int {
	return v.emitter.Len()
}

// Dispose removes all subscribers. Later writes still update the value but
// emit nothing. Dispose may be called more than once.
func (v *Value[T]) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.emitter.Clear()
}

// Disposed reports whether Dispose has been called.
func (v *Value[T]) Disposed() bool {
	return v.disposed
}
