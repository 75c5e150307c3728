package render

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Upper bound on stale errors drained before a call. Without a current
// context some drivers report INVALID_OPERATION forever.
const maxPendingErrors = 64

// CallError is the first error flag raised by a wrapped GL call.
type CallError struct {
	Code uint32
	Call string
	File string
	Line int
}

func (e *CallError) Error() string {
	return fmt.Sprintf("OpenGL Error (%d %s): %s %s:%d", e.Code, ErrorName(e.Code), e.Call, e.File, e.Line)
}

// ErrorName returns the GL name of an error code.
func ErrorName(code uint32) string {
	switch code {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04X", code)
}

// Device pairs a graphics context with the error check policy applied to
// every call made through the wrappers in this package.
type Device struct {
	GL Context

	checks     bool
	breakpoint func(error)
}

type Option func(*Device)

// WithErrorChecks turns the per-call error check on or off. On by default.
func WithErrorChecks(enabled bool) Option {
	return func(d *Device) {
		d.checks = enabled
	}
}

// WithBreakpoint replaces the action taken when Call sees an error.
// The default panics with the *CallError.
func WithBreakpoint(fn func(error)) Option {
	return func(d *Device) {
		d.breakpoint = fn
	}
}

func NewDevice(gl Context, opts ...Option) *Device {
	d := &Device{
		GL:     gl,
		checks: true,
		breakpoint: func(err error) {
			panic(err)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call clears pending errors, runs fn and aborts through the breakpoint if
// fn raised an error. The logged location is the caller of Call.
func (d *Device) Call(name string, fn func()) {
	if !d.checks {
		fn()
		return
	}
	if err := d.check(name, fn); err != nil {
		d.breakpoint(err)
	}
}

// Check is Call without the breakpoint: the error is returned instead.
// It runs the check even when error checks are disabled.
func (d *Device) Check(name string, fn func()) error {
	return d.check(name, fn)
}

func (d *Device) check(name string, fn func()) error {
	d.clearErrors()
	fn()

	code := d.GL.GetError()
	if code == NO_ERROR {
		return nil
	}

	// Skip check and Call/Check to report the wrapper's call site
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
	}
	err := &CallError{
		Code: code,
		Call: name,
		File: filepath.Base(file),
		Line: line,
	}
	Logger().Error("OpenGL error",
		"code", code,
		"error", ErrorName(code),
		"call", name,
		"file", err.File,
		"line", line)
	return err
}

func (d *Device) clearErrors() {
	for i := 0; i < maxPendingErrors; i++ {
		if d.GL.GetError() == NO_ERROR {
			return
		}
	}
}
