package value

// Emitter is an ordered observer registry. Handlers run synchronously in
// registration order. It is not safe for concurrent use; all calls belong on
// the single thread that owns the values.
type Emitter[E any] struct {
	handlers []*handler[E]
}

type handler[E any] struct {
	fn      func(E)
	removed bool
}

// On registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (e *Emitter[E]) On(fn func(E)) func() {
	if fn == nil {
		return func() {}
	}
	h := &handler[E]{fn: fn}
	e.handlers = append(e.handlers, h)
	return func() {
		e.remove(h)
	}
}

func (e *Emitter[E]) remove(h *handler[E]) {
	if h.removed {
		return
	}
	h.removed = true
	for i, other := range e.handlers {
		if other == h {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to every handler registered at the time of the call.
// Handlers removed by an earlier handler during the same emit are skipped.
func (e *Emitter[E]) Emit(ev E) {
	if len(e.handlers) == 0 {
		return
	}
	snapshot := make([]*handler[E], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, h := range snapshot {
		if !h.removed {
			h.fn(ev)
		}
	}
}

// Len returns the number of registered handlers.
func (e *Emitter[E]) Len() int {
	return len(e.handlers)
}

// Clear removes every handler.
func (e *Emitter[E]) Clear() {
	for _, h := range e.handlers {
		h.removed = true
	}
	e.handlers = nil
}
