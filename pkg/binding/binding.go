// Package binding couples a value to a property of a host object.
//
// A [Binding] owns one [value.Value] and references one [Target]. Changes of
// the value are written to the target synchronously through the binding's
// writer; [Binding.Read] pulls the target through the reader to pick up
// changes made outside the panel. Bindings never retry, log or swallow
// reader and writer failures; they are returned to the caller, which decides
// how to isolate them.
package binding

import (
	"github.com/google/uuid"

	"github.com/go-knobs/knobs/pkg/value"
)

// Reader converts an external value into the internal representation.
type Reader[T any] func(external any) T

// Writer pushes an internal value to the target.
type Writer[T any] func(target Target, v T) error

// WritePrimitive writes v to the target unchanged.
func WritePrimitive[T any](target Target, v T) error {
	return target.Write(v)
}

// AssertReader returns a Reader that type-asserts the external value and
// falls back to the zero value.
func AssertReader[T any]() Reader[T] {
	return func(external any) T {
		v, _ := external.(T)
		return v
	}
}

// Config holds the parts of a Binding.
type Config[T any] struct {
	Target Target
	// Reader is required.
	Reader Reader[T]
	// Writer defaults to WritePrimitive.
	Writer Writer[T]
	// Value is the pre-built value, constraint included. The binding takes
	// ownership of it.
	Value *value.Value[T]
	// OnError receives writer errors caused by writes to Value that did not
	// go through Read or Set.
	OnError func(error)
}

// Binding synchronizes a value with a target.
type Binding[T any] struct {
	id      uuid.UUID
	target  Target
	reader  Reader[T]
	writer  Writer[T]
	value   *value.Value[T]
	onError func(error)
	off     func()

	// reading is set while Read propagates; readValue is what the target
	// held when the read started.
	reading   bool
	readValue T
	// capturing is set while Read or Set propagate, so their writer error
	// is returned instead of handed to onError.
	capturing bool
	captured  error
	lastErr   error
	disposed  bool
}

// New creates a Binding and subscribes it to its value. The subscription
// lives until Dispose.
func New[T any](cfg Config[T]) *Binding[T] {
	b := &Binding[T]{
		id:      uuid.New(),
		target:  cfg.Target,
		reader:  cfg.Reader,
		writer:  cfg.Writer,
		value:   cfg.Value,
		onError: cfg.OnError,
	}
	if b.reader == nil {
		b.reader = AssertReader[T]()
	}
	if b.writer == nil {
		b.writer = WritePrimitive[T]
	}
	b.off = b.value.OnChange(b.onValueChange)
	return b
}

func (b *Binding[T]) onValueChange(ev value.ChangeEvent[T]) {
	// The target already holds this value; writing it back would only
	// echo the read.
	if b.reading && b.value.Equal(ev.RawValue, b.readValue) {
		return
	}
	if err := b.writer(b.target, ev.RawValue); err != nil {
		b.lastErr = err
		if b.capturing {
			if b.captured == nil {
				b.captured = err
			}
			return
		}
		if b.onError != nil {
			b.onError(err)
		}
	}
}

// Read fetches the target value and stores it in the binding's value. The
// value's constraint and equality apply as for any other write, so reading
// an unchanged target does nothing. Write-back happens only when the read
// changes the value: if the constrained result differs from the target it
// is written back once. When the constrained result equals the value the
// binding already holds, nothing is emitted and the target keeps its
// out-of-domain content (a target at 150 under Range(0, 100) with the value
// already at 100 stays at 150). Use Push to force the write.
func (b *Binding[T]) Read() error {
	if b.disposed {
		return nil
	}
	external, err := b.target.Read()
	if err != nil {
		return err
	}
	next := b.reader(external)

	prevReading, prevValue := b.reading, b.readValue
	b.reading, b.readValue = true, next
	defer func() { b.reading, b.readValue = prevReading, prevValue }()

	return b.capture(func() { b.value.SetRawValue(next) })
}

// Set writes v to the binding's value and returns the writer error the
// write caused, if any.
func (b *Binding[T]) Set(v T) error {
	if b.disposed {
		return nil
	}
	return b.capture(func() { b.value.SetRawValue(v) })
}

// Push writes the current value to the target even if it did not change,
// and returns the writer error.
func (b *Binding[T]) Push() error {
	if b.disposed {
		return nil
	}
	return b.capture(func() {
		b.value.SetRawValueWith(b.value.RawValue(), value.SetOptions{ForceEmit: true, Last: true})
	})
}

func (b *Binding[T]) capture(write func()) error {
	prevCapturing, prevCaptured := b.capturing, b.captured
	b.capturing, b.captured = true, nil
	defer func() { b.capturing, b.captured = prevCapturing, prevCaptured }()

	write()
	return b.captured
}

// Value returns the bound value.
func (b *Binding[T]) Value() *value.Value[T] {
	return b.value
}

// Target returns the bound target.
func (b *Binding[T]) Target() Target {
	return b.target
}

// Key returns the target key.
func (b *Binding[T]) Key() string {
	return b.target.Key()
}

// ID identifies the binding in logs.
func (b *Binding[T]) ID() uuid.UUID {
	return b.id
}

// Err returns the most recent writer error.
func (b *Binding[T]) Err() error {
	return b.lastErr
}

// Dispose unsubscribes from the value and disposes it. Dispose may be
// called more than once.
func (b *Binding[T]) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.off()
	b.value.Dispose()
}

// Disposed reports whether Dispose has been called.
func (b *Binding[T]) Disposed() bool {
	return b.disposed
}
