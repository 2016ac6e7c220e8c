// File: eval/eval.go
// Package eval implements the reference evaluator behind the
// api.Evaluator contract: a literal-argument applier for function
// values. It binds already-evaluated values to parameters without ever
// re-evaluating them.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package eval

import "github.com/momentics/portio/api"

// Evaluator is the reference literal applier. The zero value is usable;
// BreakpointHook may be set to install a debugger-resume hook.
type Evaluator struct {
	// BreakpointHook, when non-nil, is consulted by Breakpoint.
	BreakpointHook func() api.Outcome
}

// New creates an evaluator with no breakpoint hook installed.
func New() *Evaluator {
	return &Evaluator{}
}

// ApplyLiteral binds args to fn's parameters and runs the body.
//
// Binding walk: normal parameters before the first refinement are open
// from the start; a Refinement token enables the named refinement
// parameter and opens the normal parameters that follow it, up to the
// next refinement. A plain value fills the next open normal slot.
// Binding stops at the first argument that cannot be placed; consumed
// reports how many were. Unfilled slots hold None, disabled
// refinements hold Logic(false).
func (e *Evaluator) ApplyLiteral(fn api.Value, args []api.Value) (api.Outcome, int) {
	f, ok := fn.(*api.Function)
	if !ok || f.Body == nil {
		err := api.NewError(api.ErrCodeInvalidCall, "not a callable value")
		return api.Thrown(api.ThrownInvalidCall, err), 0
	}

	bound := make([]api.Value, len(f.Params))
	var open []int // indices of open normal slots, in order
	for i, p := range f.Params {
		switch p.Class {
		case api.ParamRefinement:
			bound[i] = api.Logic(false)
		case api.ParamNormal:
			bound[i] = api.None{}
		default:
			bound[i] = api.None{}
		}
	}
	// Leading normals are open until the first refinement.
	for i, p := range f.Params {
		if p.Class == api.ParamRefinement {
			break
		}
		if p.Class == api.ParamNormal {
			open = append(open, i)
		}
	}

	consumed := 0
	for _, a := range args {
		if ref, isRef := a.(api.Refinement); isRef {
			idx := refinementIndex(f, string(ref))
			if idx < 0 {
				break
			}
			bound[idx] = api.Logic(true)
			for j := idx + 1; j < len(f.Params); j++ {
				if f.Params[j].Class == api.ParamRefinement {
					break
				}
				if f.Params[j].Class == api.ParamNormal {
					open = append(open, j)
				}
			}
			consumed++
			continue
		}
		if len(open) == 0 {
			break
		}
		bound[open[0]] = a
		open = open[1:]
		consumed++
	}

	return f.Body(&api.Frame{Fn: f, Args: bound}), consumed
}

// Fail raises err as a thrown outcome unwinding to the caller.
func (e *Evaluator) Fail(err error) api.Outcome {
	name := "error"
	if se, ok := err.(*api.Error); ok {
		switch se.Code {
		case api.ErrCodeSecurity:
			name = api.ThrownSecurity
		case api.ErrCodeInvalidPort:
			name = api.ThrownInvalidPort
		case api.ErrCodeNoPortAction:
			name = api.ThrownNoPortAction
		}
	}
	return api.Thrown(name, err)
}

// Breakpoint runs the installed hook; with none installed, execution
// resumes normally.
func (e *Evaluator) Breakpoint() api.Outcome {
	if e.BreakpointHook == nil {
		return api.Absent()
	}
	return e.BreakpointHook()
}

func refinementIndex(f *api.Function, name string) int {
	for i, p := range f.Params {
		if p.Class == api.ParamRefinement && p.Name == name {
			return i
		}
	}
	return -1
}
