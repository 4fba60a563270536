package applet

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Controller methods. Use errors.Is to match them.
var (
	// ErrInvalidTransition is returned when a method is called from a state
	// that does not permit it. The state is left unchanged.
	ErrInvalidTransition = errors.New("applet: invalid transition")

	// ErrInitializationFailed is returned by Load when resource acquisition
	// fails. The controller stays unloaded and Load may be retried.
	ErrInitializationFailed = errors.New("applet: initialization failed")

	// ErrDestroyRefused is returned by Destroy(false) when the applet asks to
	// keep running. It is a negotiated outcome; retry with force to override.
	ErrDestroyRefused = errors.New("applet: destroy refused")
)

// TransitionError describes a rejected lifecycle request.
type TransitionError struct {
	// Op is the requested operation ("load", "start", "pause", "destroy").
	Op string
	// From is the state the controller was in when the request arrived.
	From State
	// Kind is one of the package sentinel errors.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s from %s: %v: %v", e.Op, e.From, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s from %s: %v", e.Op, e.From, e.Kind)
}

func (e *TransitionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// PanicError wraps a value recovered from a panicking hook.
type PanicError struct {
	Hook  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Hook, e.Value)
}
