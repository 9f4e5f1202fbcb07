package knobstest

import (
	"sync"

	"github.com/go-knobs/knobs/pkg/errors"
)

// RecordingHandler is an errors.ErrorHandler that keeps everything it
// receives.
type RecordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.PaneError
	panics []*errors.PanicError
}

// HandleError records err.
func (h *RecordingHandler) HandleError(err *errors.PaneError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

// HandlePanic records err.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns the recorded errors.
func (h *RecordingHandler) Errors() []*errors.PaneError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PaneError(nil), h.errs...)
}

// Panics returns the recorded panics.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}
