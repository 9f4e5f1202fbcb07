// Package errors provides structured error handling for knobs panes.
//
// Constraints and values never fail. Errors originate at the boundary with
// host data (targets, readers, writers) and at lifecycle misuse, and are
// reported as *PaneError values that match the sentinel errors below with
// errors.Is.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAlreadyDisposed indicates use of a resource after disposal.
	KindAlreadyDisposed
	// KindNotBindable indicates a target or value no plugin can bind.
	KindNotBindable
	// KindInvalidParams indicates malformed declarative input params.
	KindInvalidParams
	// KindIncompatiblePlugin indicates a plugin rejected by the registry.
	KindIncompatiblePlugin
	// KindRead indicates a failure while reading a target.
	KindRead
	// KindWrite indicates a failure while writing a target.
	KindWrite
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAlreadyDisposed:
		return "alreadyDisposed"
	case KindNotBindable:
		return "notBindable"
	case KindInvalidParams:
		return "invalidParams"
	case KindIncompatiblePlugin:
		return "incompatiblePlugin"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by PaneError.Is for the corresponding kind.
var (
	ErrAlreadyDisposed    = goerrors.New("already disposed")
	ErrNotBindable        = goerrors.New("not bindable")
	ErrInvalidParams      = goerrors.New("invalid params")
	ErrIncompatiblePlugin = goerrors.New("incompatible plugin")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAlreadyDisposed:
		return ErrAlreadyDisposed
	case KindNotBindable:
		return ErrNotBindable
	case KindInvalidParams:
		return ErrInvalidParams
	case KindIncompatiblePlugin:
		return ErrIncompatiblePlugin
	default:
		return nil
	}
}

// PaneError represents a structured error raised by a pane or one of its
// bindings.
type PaneError struct {
	// Op is the operation that failed (e.g., "pane.Dispose").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the bound property key, if applicable.
	Key string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

// New returns a PaneError for op. A nil err is replaced by the kind's
// sentinel so the message stays meaningful.
func New(op string, kind ErrorKind, err error) *PaneError {
	if err == nil {
		err = kind.sentinel()
	}
	return &PaneError{Op: op, Kind: kind, Err: err}
}

// WithKey returns the error annotated with a property key.
func (e *PaneError) WithKey(key string) *PaneError {
	e.Key = key
	return e
}

func (e *PaneError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PaneError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for the error's kind.
func (e *PaneError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// IsKind reports whether err is, or wraps, a PaneError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PaneError
	if !goerrors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "pane.Refresh").
	Op string
	// Key is the bound property key, if applicable.
	Key string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors isolated by a pane.
type ErrorHandler interface {
	// HandleError is called when a binding fails.
	HandleError(err *PaneError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
