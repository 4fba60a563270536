package errors

import (
	"github.com/go-drift/applet/internal/logging"
)

// LogHandler is an ErrorHandler that writes through a logging.Logger.
type LogHandler struct {
	// Logger receives the entries. Nil means the package default logger.
	Logger *logging.Logger
	// Verbose includes stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *logging.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Default()
}

// HandleError logs an AppletError. Refusals are negotiated outcomes and are
// logged at info level; everything else at error level.
func (h *LogHandler) HandleError(err *AppletError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind, "err", err.Err}
	if err.Applet != "" {
		kv = append(kv, "applet", err.Applet)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	if err.Kind == KindRefused {
		h.logger().Info("applet error", kv...)
		return
	}
	h.logger().Error("applet error", kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("applet panic", kv...)
}
