// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the port runtime.

package api

import "fmt"

// Common errors used across the runtime.
var (
	// ErrHalted aborts a wait after a halt signal; the wait is not
	// resumable afterwards.
	ErrHalted = fmt.Errorf("halted")
	// ErrResumeValue reports a debugger resume-with-value request the
	// wait loop has no channel to deliver upward.
	ErrResumeValue = fmt.Errorf("cannot resume wait with a value")
)

// ErrorCode represents specific error conditions in the runtime.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidPort
	ErrCodeNoPortAction
	ErrCodeSecurity
	ErrCodeInvalidCall
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Thrown names used by the dispatch layer.
const (
	ThrownInvalidPort  = "invalid-port"
	ThrownNoPortAction = "no-port-action"
	ThrownSecurity     = "security"
	ThrownInvalidCall  = "invalid-call"
)

// InvalidPort builds the thrown outcome for a port that fails the
// shape invariant.
func InvalidPort() Outcome {
	return Thrown(ThrownInvalidPort, NewError(ErrCodeInvalidPort, "invalid port record"))
}

// NoPortAction builds the thrown outcome for an action missing from an
// object actor's handler table; it names the action.
func NoPortAction(action Word) Outcome {
	err := NewError(ErrCodeNoPortAction, "port action not supported").
		WithContext("action", string(action))
	return Thrown(ThrownNoPortAction, err)
}
