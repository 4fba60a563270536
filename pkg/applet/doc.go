// Package applet implements the lifecycle state machine every hosted applet
// follows.
//
// A host runtime constructs a [Controller] around the applet's [Hooks] and
// drives it through Load, Start, Pause and Destroy. The controller rejects
// requests that its current [State] does not permit with
// [ErrInvalidTransition] and leaves the state unchanged.
//
//	ctrl := applet.NewController(hooks)
//	if err := ctrl.Load(ctx); err != nil {
//	    // errors.Is(err, applet.ErrInitializationFailed)
//	}
//	ctrl.Start() // first start: hooks.Setup runs
//	ctrl.Pause()
//	ctrl.Start() // resume: no setup
//	if err := ctrl.Destroy(false); errors.Is(err, applet.ErrDestroyRefused) {
//	    ctrl.Destroy(true)
//	}
//
// Destroyed is terminal. Calling Destroy a second time returns
// ErrInvalidTransition rather than silently succeeding, so a host that
// double-destroys learns about it.
package applet
