package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the package-wide error handler and returns the
// previous one so tests can restore it. Nil installs a quiet LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err if needed and passes it to the installed handler.
func Report(err *SheetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic stamps err if needed and passes it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in the calling goroutine and swallows it.
// It must be deferred directly:
//
//	defer errors.Recover("sheet.DidDisplay")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// RecoverCallback guards a host-supplied callback. A panic is swallowed and
// reported through Report as a KindCallback error wrapping the *PanicError.
// Like Recover, it must be deferred directly.
func RecoverCallback(op string) {
	if r := recover(); r != nil {
		stack := CaptureStack()
		Report(&SheetError{
			Op:         op,
			Kind:       KindCallback,
			Err:        &PanicError{Op: op, Value: r, StackTrace: stack},
			StackTrace: stack,
		})
	}
}

// CaptureStack formats the caller's stack, one function per entry with its
// file and line indented below it.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}
