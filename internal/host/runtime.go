// Package host is a minimal applet host runtime. It owns the lifecycle
// controller of a single applet, drives it from a script of steps, and
// forwards key codes to whatever input sink the applet attached.
//
// Steps run strictly one after another on the caller's goroutine, which is
// the serialization the controller requires.
package host

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/go-drift/applet/internal/logging"
	"github.com/go-drift/applet/pkg/applet"
	"github.com/go-drift/applet/pkg/errors"
	"github.com/go-drift/applet/pkg/graphics"
	"github.com/go-drift/applet/pkg/input"
)

// ErrNotInstalled is returned by Do before Install.
var ErrNotInstalled = stderrors.New("host: no applet installed")

// Options configures a Runtime.
type Options struct {
	// AppletID names the applet in reports and logs.
	AppletID string
	// Logger receives host logs. Nil means the package default logger.
	Logger *logging.Logger
	// RetryForcedDestroy retries a refused destroy with force.
	RetryForcedDestroy bool
	// KeepGoing continues a script after a failed step.
	KeepGoing bool
}

// KeyResult records one delivered key.
type KeyResult struct {
	Code      input.Code
	Label     input.Label
	Highlight graphics.Color
}

// Runtime hosts a single applet.
type Runtime struct {
	opts Options
	log  *logging.Logger
	ctrl *applet.Controller
	sink input.Sink
	keys []KeyResult
}

// New returns a runtime with no applet installed.
func New(opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	if opts.AppletID != "" {
		log = log.With("applet", opts.AppletID)
	}
	return &Runtime{opts: opts, log: log}
}

// Install creates the lifecycle controller for hooks. Any previously
// installed applet is forgotten without being destroyed.
func (r *Runtime) Install(hooks applet.Hooks) *applet.Controller {
	r.ctrl = applet.NewController(hooks)
	r.sink = nil
	r.keys = nil
	r.ctrl.AddObserver(func(from, to applet.State) {
		r.log.Info("lifecycle transition", "from", from, "to", to)
	})
	return r.ctrl
}

// Controller returns the installed controller, or nil.
func (r *Runtime) Controller() *applet.Controller {
	return r.ctrl
}

// SetSink attaches the input sink keys are forwarded to. Nil detaches it.
func (r *Runtime) SetSink(sink input.Sink) {
	r.sink = sink
}

// Keys returns the keys delivered so far.
func (r *Runtime) Keys() []KeyResult {
	return append([]KeyResult(nil), r.keys...)
}

// Run executes steps in order. It stops at the first failing step unless
// KeepGoing is set, in which case all failures are joined.
func (r *Runtime) Run(ctx context.Context, steps []Step) error {
	var errs []error
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return stderrors.Join(append(errs, err)...)
		}
		if err := r.Do(ctx, step); err != nil {
			if !r.opts.KeepGoing {
				return err
			}
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Do executes a single step. Lifecycle failures are reported through
// pkg/errors and returned.
func (r *Runtime) Do(ctx context.Context, step Step) error {
	if r.ctrl == nil {
		return ErrNotInstalled
	}
	var err error
	switch step.Op {
	case OpLoad:
		err = r.ctrl.Load(ctx)
	case OpStart:
		err = r.ctrl.Start()
	case OpPause:
		err = r.ctrl.Pause()
	case OpDestroy:
		err = r.destroy()
	case OpKill:
		err = r.ctrl.Destroy(true)
	case OpKey:
		r.deliver(step.Code)
		return nil
	default:
		return fmt.Errorf("host: unknown op %q", step.Op)
	}
	if err != nil {
		errors.Report(errors.New("host."+string(step.Op), r.opts.AppletID, err))
	}
	return err
}

func (r *Runtime) destroy() error {
	err := r.ctrl.Destroy(false)
	if err == nil || !stderrors.Is(err, applet.ErrDestroyRefused) || !r.opts.RetryForcedDestroy {
		return err
	}
	errors.Report(errors.New("host.destroy", r.opts.AppletID, err))
	r.log.Info("destroy refused, retrying with force")
	return r.ctrl.Destroy(true)
}

func (r *Runtime) deliver(code input.Code) {
	if state := r.ctrl.State(); state != applet.StateActive {
		r.log.Debug("key dropped", "code", int(code), "state", state)
		return
	}
	if r.sink == nil {
		r.log.Warn("key dropped, no input sink attached", "code", int(code))
		return
	}
	defer errors.RecoverWithCallback("host.dispatch", func(any) {
		r.log.Error("input handler panicked", "code", int(code))
	})
	label, highlight := r.sink.Dispatch(code)
	r.keys = append(r.keys, KeyResult{Code: code, Label: label, Highlight: highlight})
	r.log.Debug("key dispatched", "code", int(code), "label", string(label), "highlight", highlight)
}
