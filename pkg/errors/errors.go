// Package errors provides structured error handling for the sheet packages.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind classifies a SheetError.
type ErrorKind int

const (
	// KindUnknown is the zero kind.
	KindUnknown ErrorKind = iota
	// KindInit indicates a construction error, such as a missing collaborator.
	KindInit
	// KindConfig indicates a configuration read, parse or validation error.
	KindConfig
	// KindCallback marks a panic inside a host-supplied callback. Err is
	// the *PanicError.
	KindCallback
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// SheetError represents a structured error raised by the sheet packages.
type SheetError struct {
	// Op is the operation that failed (e.g., "sheet.New").
	Op string
	// Kind is the failure category.
	Kind ErrorKind
	// Err is the wrapped cause.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace is optional; see CaptureStack.
	StackTrace string
	// Timestamp is set by Report when left zero.
	Timestamp time.Time
}

func (e *SheetError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panic in a guarded callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "sheet.DidDisplay").
	Op string
	// Value is what was passed to panic.
	Value any
	// StackTrace is captured where the panic was recovered.
	StackTrace string
	// Timestamp is set by ReportPanic when left zero.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the sheet packages.
type ErrorHandler interface {
	// HandleError receives errors passed to Report.
	HandleError(err *SheetError)
	// HandlePanic receives panics caught by Recover.
	HandlePanic(err *PanicError)
}
