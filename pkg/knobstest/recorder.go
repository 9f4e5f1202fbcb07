package knobstest

import "github.com/go-knobs/knobs/pkg/value"

// Recorder captures the change events of a value.
type Recorder[T any] struct {
	Events []value.ChangeEvent[T]
	off    func()
}

// Record subscribes a new Recorder to v.
func Record[T any](v *value.Value[T]) *Recorder[T] {
	r := &Recorder[T]{}
	r.off = v.OnChange(func(ev value.ChangeEvent[T]) {
		r.Events = append(r.Events, ev)
	})
	return r
}

// Values returns the raw values of the recorded events in order.
func (r *Recorder[T]) Values() []T {
	vs := make([]T, len(r.Events))
	for i, ev := range r.Events {
		vs[i] = ev.RawValue
	}
	return vs
}

// Count returns the number of recorded events.
func (r *Recorder[T]) Count() int {
	return len(r.Events)
}

// Reset forgets the recorded events.
func (r *Recorder[T]) Reset() {
	r.Events = nil
}

// Stop unsubscribes the recorder.
func (r *Recorder[T]) Stop() {
	r.off()
}
