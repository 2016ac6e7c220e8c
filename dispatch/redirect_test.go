package dispatch_test

import (
	"strings"
	"testing"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/dispatch"
	"github.com/momentics/portio/eval"
)

// A disabled refinement skips its following ordinary arguments; an
// enabled one travels as a token.
func TestRedirectSkipsDisabledRefinementArgs(t *testing.T) {
	srcFn := &api.Function{
		Name: "src",
		Params: []api.Param{
			{Name: "a", Class: api.ParamNormal},
			{Name: "r", Class: api.ParamRefinement},
			{Name: "b", Class: api.ParamNormal},
			{Name: "c", Class: api.ParamNormal},
			{Name: "s", Class: api.ParamRefinement},
			{Name: "d", Class: api.ParamNormal},
			{Name: "tmp", Class: api.ParamLocal},
		},
	}
	frame := &api.Frame{Fn: srcFn, Args: []api.Value{
		api.Str("A"),     // a
		api.Logic(false), // /r disabled
		api.Str("B"),     // b, skipped
		api.Str("C"),     // c, skipped
		api.Logic(true),  // /s enabled
		api.Str("D"),     // d
		api.None{},       // local
	}}

	var seen *api.Frame
	target := &api.Function{
		Name: "target",
		Params: []api.Param{
			{Name: "a", Class: api.ParamNormal},
			{Name: "s", Class: api.ParamRefinement},
			{Name: "d", Class: api.ParamNormal},
		},
		Body: func(f *api.Frame) api.Outcome {
			seen = f
			return api.ValueOf(api.None{})
		},
	}

	out := dispatch.Redirect(eval.New(), frame, target)
	if out.IsThrown() {
		t.Fatalf("redirect thrown: %v", out)
	}
	if seen.Arg("a") != api.Str("A") || seen.Arg("d") != api.Str("D") {
		t.Error("surviving arguments not forwarded")
	}
	if !seen.Enabled("s") {
		t.Error("/s not enabled on target")
	}
}

// Under-consumption of the synthetic vector is an internal bug.
func TestRedirectSaturationPanic(t *testing.T) {
	srcFn := &api.Function{
		Name: "src",
		Params: []api.Param{
			{Name: "a", Class: api.ParamNormal},
			{Name: "b", Class: api.ParamNormal},
		},
	}
	frame := &api.Frame{Fn: srcFn, Args: []api.Value{api.Str("A"), api.Str("B")}}

	target := &api.Function{
		Name:   "narrow",
		Params: []api.Param{{Name: "a", Class: api.ParamNormal}},
		Body:   func(f *api.Frame) api.Outcome { return api.ValueOf(api.None{}) },
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on unsaturated synthetic call")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "not saturated") {
			t.Errorf("unexpected panic payload: %v", r)
		}
	}()
	dispatch.Redirect(eval.New(), frame, target)
}
