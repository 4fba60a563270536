package applet

import (
	"context"
)

// Hooks are the applet-specific side effects a Controller triggers on its
// transitions. Implementations delegate to external collaborators such as
// an asset loader or a display-surface provider.
type Hooks interface {
	// Acquire performs one-time resource acquisition during Load.
	Acquire(ctx context.Context) error
	// Setup runs on the first Loaded -> Active edge only, never on resume.
	Setup()
	// Release drops every resource acquired by Acquire and Setup.
	Release()
}

// Refuser is optionally implemented by Hooks that may decline an unforced
// destroy request.
type Refuser interface {
	RefuseDestroy() bool
}

// Controller enforces the applet lifecycle:
//
//	Unloaded --Load--> Loaded --Start--> Active <--Start-- Paused
//	                                       |                 ^
//	                                       +------Pause------+
//	any non-Destroyed state --Destroy--> Destroyed
//
// Controller does no locking. The host runtime must serialize calls.
type Controller struct {
	hooks     Hooks
	state     State
	observers []observerEntry
	nextID    int
}

type observerEntry struct {
	id int
	fn Observer
}

// NewController returns a controller in StateUnloaded. hooks may be nil.
func NewController(hooks Hooks) *Controller {
	return &Controller{hooks: hooks, state: StateUnloaded}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// AddObserver registers fn to be called after every successful transition.
// A panic in fn is discarded. Returns a function that removes the observer.
func (c *Controller) AddObserver(fn Observer) func() {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observerEntry{id: id, fn: fn})
	return func() {
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Load acquires resources and moves Unloaded -> Loaded. If acquisition
// fails or panics the controller stays unloaded and the returned error
// matches ErrInitializationFailed.
func (c *Controller) Load(ctx context.Context) error {
	if c.state != StateUnloaded {
		return c.reject("load")
	}
	if c.hooks != nil {
		if err := c.acquire(ctx); err != nil {
			return &TransitionError{Op: "load", From: c.state, Kind: ErrInitializationFailed, Err: err}
		}
	}
	c.transition(StateLoaded)
	return nil
}

// Start moves Loaded -> Active, running first-run setup, or Paused -> Active
// without setup.
func (c *Controller) Start() error {
	switch c.state {
	case StateLoaded:
		if c.hooks != nil {
			c.hooks.Setup()
		}
	case StatePaused:
	default:
		return c.reject("start")
	}
	c.transition(StateActive)
	return nil
}

// Pause moves Active -> Paused. It fails only on the state precondition.
func (c *Controller) Pause() error {
	if c.state != StateActive {
		return c.reject("pause")
	}
	c.transition(StatePaused)
	return nil
}

// Destroy moves any non-Destroyed state to Destroyed.
//
// With force set it always succeeds. Without force the hooks may refuse
// through Refuser, in which case ErrDestroyRefused is returned and the
// state is unchanged. Destroy from StateDestroyed returns ErrInvalidTransition.
func (c *Controller) Destroy(force bool) error {
	if c.state.IsTerminal() {
		return c.reject("destroy")
	}
	if !force && c.refuses() {
		return &TransitionError{Op: "destroy", From: c.state, Kind: ErrDestroyRefused}
	}
	if c.state != StateUnloaded && c.hooks != nil {
		c.release()
	}
	c.transition(StateDestroyed)
	return nil
}

func (c *Controller) acquire(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Hook: "Acquire", Value: r}
		}
	}()
	return c.hooks.Acquire(ctx)
}

// release swallows panics: a forced destroy cannot fail.
func (c *Controller) release() {
	defer func() {
		_ = recover()
	}()
	c.hooks.Release()
}

// refuses asks the Refuser. A panicking Refuser does not refuse.
func (c *Controller) refuses() (refused bool) {
	r, ok := c.hooks.(Refuser)
	if !ok {
		return false
	}
	defer func() {
		if recover() != nil {
			refused = false
		}
	}()
	return r.RefuseDestroy()
}

func (c *Controller) reject(op string) error {
	return &TransitionError{Op: op, From: c.state, Kind: ErrInvalidTransition}
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	for _, o := range append([]observerEntry(nil), c.observers...) {
		notify(o.fn, from, to)
	}
}

// notify runs fn, discarding a panic so the remaining observers still run
// and the completed transition is reported as successful.
func notify(fn Observer, from, to State) {
	defer func() {
		_ = recover()
	}()
	fn(from, to)
}
