// File: api/outcome.go
// Package api defines the tagged Outcome result carried across every
// evaluator and actor invocation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-local control transfer (throw, halt, interrupt) travels as an
// explicit Outcome variant up the call stack. The core never uses the
// host panic facility for control flow; panics are reserved for the two
// internal assertions (registry overflow, redirect saturation).

package api

import "fmt"

// OutcomeKind tags the Outcome variant.
type OutcomeKind uint8

const (
	// OutValue carries a normal result value.
	OutValue OutcomeKind = iota
	// OutThrown carries a named non-local exit with payload.
	OutThrown
	// OutAbsent marks a deliberate no-op result (missing actor).
	OutAbsent
)

// Outcome is the explicit result of an actor or evaluator call.
type Outcome struct {
	Kind    OutcomeKind
	Val     Value
	Name    string // thrown name, OutThrown only
	Payload Value  // thrown payload, OutThrown only
}

// ValueOf wraps a normal result.
func ValueOf(v Value) Outcome {
	return Outcome{Kind: OutValue, Val: v}
}

// Thrown builds a named non-local exit.
func Thrown(name string, payload Value) Outcome {
	return Outcome{Kind: OutThrown, Name: name, Payload: payload}
}

// Absent marks a no-op result.
func Absent() Outcome {
	return Outcome{Kind: OutAbsent}
}

// IsThrown reports whether the outcome is a non-local exit.
func (o Outcome) IsThrown() bool { return o.Kind == OutThrown }

// Err adapts a thrown outcome to a Go error at API boundaries;
// nil for value and absent outcomes.
func (o Outcome) Err() error {
	if o.Kind != OutThrown {
		return nil
	}
	return &ThrownError{Name: o.Name, Payload: o.Payload}
}

// ThrownError carries a thrown outcome across a Go error boundary
// without losing its name or payload.
type ThrownError struct {
	Name    string
	Payload Value
}

// Error implements the error interface.
func (e *ThrownError) Error() string {
	if e.Payload == nil {
		return fmt.Sprintf("thrown: %s", e.Name)
	}
	return fmt.Sprintf("thrown: %s (%v)", e.Name, e.Payload)
}
