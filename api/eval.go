// File: api/eval.go
// Package api defines the evaluator collaborator contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The evaluator is the host language engine. The port runtime consumes
// it through this narrow contract only: literal application, failure
// raising, and the breakpoint hook used from inside a blocking wait.

package api

// Evaluator is the host evaluator contract.
type Evaluator interface {
	// ApplyLiteral invokes fn with already-evaluated arguments; no
	// element of args is ever re-evaluated. Refinement tokens in args
	// enable the refinement parameter of the same name on fn.
	// consumed reports how many elements of args were bound; a caller
	// that constructed args to exactly saturate fn must treat
	// consumed != len(args) as an internal defect.
	ApplyLiteral(fn Value, args []Value) (out Outcome, consumed int)

	// Fail raises err as a thrown outcome that unwinds to the nearest
	// recovery point.
	Fail(err error) Outcome

	// Breakpoint offers the debugger-resume hook during a blocking
	// wait. Absent means execution resumed normally; a thrown outcome
	// propagates; a value outcome is a resume-with-value request the
	// wait loop cannot honor.
	Breakpoint() Outcome
}
