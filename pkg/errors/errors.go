// Package errors provides structured error reporting for applet hosts.
//
// The lifecycle controller and the input dispatcher surface failures to their
// caller and never report on their own. A host runtime classifies what it
// receives with [KindOf], wraps it in an [AppletError] and hands it to
// [Report], which forwards to the configured [ErrorHandler].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-drift/applet/pkg/applet"
	"github.com/go-drift/applet/pkg/assets"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTransition indicates a lifecycle request from the wrong state.
	KindTransition
	// KindInit indicates a failed resource acquisition during load.
	KindInit
	// KindRefused indicates an applet declined an unforced destroy.
	KindRefused
	// KindAsset indicates an asset could not be loaded.
	KindAsset
	// KindRender indicates a failure producing a frame or snapshot.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransition:
		return "transition"
	case KindInit:
		return "init"
	case KindRefused:
		return "refused"
	case KindAsset:
		return "asset"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// KindOf classifies err by the sentinel errors it wraps.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case stderrors.Is(err, applet.ErrInvalidTransition):
		return KindTransition
	case stderrors.Is(err, applet.ErrDestroyRefused):
		return KindRefused
	case stderrors.Is(err, applet.ErrInitializationFailed):
		return KindInit
	}
	var ae *assets.Error
	if stderrors.As(err, &ae) {
		return KindAsset
	}
	var pe *applet.PanicError
	if stderrors.As(err, &pe) {
		return KindPanic
	}
	return KindUnknown
}

// AppletError represents a structured error raised while hosting an applet.
type AppletError struct {
	// Op is the operation that failed (e.g., "host.load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Applet is the applet id, if known.
	Applet string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns an AppletError for op, classifying err with KindOf.
func New(op, appletID string, err error) *AppletError {
	return &AppletError{Op: op, Kind: KindOf(err), Applet: appletID, Err: err}
}

func (e *AppletError) Error() string {
	if e.Applet != "" {
		return fmt.Sprintf("%s [%s] applet=%s: %v", e.Op, e.Kind, e.Applet, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AppletError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.dispatch").
	Op string
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

// ErrorHandler receives errors reported by an applet host.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AppletError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
