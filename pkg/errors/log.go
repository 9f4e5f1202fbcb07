package errors

import "github.com/rs/zerolog"

// LogHandler is an ErrorHandler that writes errors to a zerolog logger.
// The zero value discards everything.
type LogHandler struct {
	Logger zerolog.Logger
	// Verbose includes stack traces of recovered panics.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger zerolog.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

// HandleError logs a PaneError.
func (h *LogHandler) HandleError(err *PaneError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if err.Key != "" {
		ev = ev.Str("key", err.Key)
	}
	ev.Msg("binding failed")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("op", err.Op).
		Interface("panic", err.Value)
	if err.Key != "" {
		ev = ev.Str("key", err.Key)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
