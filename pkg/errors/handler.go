package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct {
	h ErrorHandler
}

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// SetHandler installs h as the destination of Report and ReportPanic and
// returns the handler it replaced. A nil h restores a LogHandler on the
// default logger.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerBox{h: h}).h
}

// Handler returns the installed ErrorHandler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err and forwards it to the installed handler. Nil is ignored.
func Report(err *AppletError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic stamps err and forwards it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("host.dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r) once the panic has
// been reported.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(4),
	})
}

// CaptureStack returns the caller's stack, one "function (file:line)" per line.
func CaptureStack() string {
	return captureStack(3)
}

// captureStack skips skip frames, counting runtime.Callers itself.
func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s (%s:%d)\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
