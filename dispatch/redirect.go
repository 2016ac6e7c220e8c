// File: dispatch/redirect.go
// Package dispatch: the call-redirection trampoline. A call frame
// built for one function is replayed against another function without
// re-evaluating any argument.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"fmt"

	"github.com/momentics/portio/api"
)

// Redirect replays f's already-evaluated arguments against target.
//
// A synthetic argument vector is built from the original function's
// parameters and bound values in lockstep, then submitted through the
// evaluator's literal applier with target as the callee. A thrown
// outcome propagates unchanged. The construction must exactly saturate
// the target call; the evaluator reporting otherwise is an internal
// dispatch-construction bug and panics.
func Redirect(ev api.Evaluator, f *api.Frame, target *api.Function) api.Outcome {
	vector := synthesize(f)
	out, consumed := ev.ApplyLiteral(target, vector)
	if consumed != len(vector) {
		panic(fmt.Sprintf("port action redirect: synthetic call not saturated (%d of %d args bound, target %q)",
			consumed, len(vector), target.Name))
	}
	return out
}

// synthesize walks the original parameters and bound arguments:
// local/return/leave slots have nothing to replay; a disabled
// refinement skips itself and its following ordinary arguments until
// the next refinement; an enabled refinement emits its name as a
// refinement token; an ordinary parameter not being skipped appends
// its evaluated value verbatim.
func synthesize(f *api.Frame) []api.Value {
	if f == nil || f.Fn == nil {
		return nil
	}
	var vector []api.Value
	skipping := false
	for i, p := range f.Fn.Params {
		var arg api.Value = api.None{}
		if i < len(f.Args) {
			arg = f.Args[i]
		}
		switch p.Class {
		case api.ParamLocal, api.ParamReturn, api.ParamLeave:
			continue
		case api.ParamRefinement:
			if api.Truthy(arg) {
				vector = append(vector, api.Refinement(p.Name))
				skipping = false
			} else {
				skipping = true
			}
		case api.ParamNormal:
			if skipping {
				continue
			}
			vector = append(vector, arg)
		}
	}
	return vector
}
