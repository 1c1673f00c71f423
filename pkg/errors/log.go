package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to stderr, or to Out
// when it is set.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a SheetError.
func (h *LogHandler) HandleError(err *SheetError) {
	if err == nil {
		return
	}
	w := h.writer()
	if h.Verbose {
		fmt.Fprintf(w, "[sheet error] %s [%s]", err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(w, " path=%s", err.Path)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[sheet error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.writer()
	if err.Op != "" {
		fmt.Fprintf(w, "[sheet panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[sheet panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
