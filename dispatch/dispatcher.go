// File: dispatch/dispatcher.go
// Package dispatch implements the generic port action entry point:
// given a port and an action verb, resolve and invoke the correct
// handler, native or user-defined, with uniform post-processing.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"strings"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

// Dispatch resolves action against p's actor and invokes it.
//
// A malformed port throws invalid-port. A missing actor is a
// deliberate no-op (Absent). A native actor is called directly and is
// fully responsible for behavior; an object actor's handler is invoked
// through Redirect so the frame's already-evaluated arguments are
// forwarded without re-evaluation. Read results are normalized
// afterwards, uniformly across all scheme backends.
func Dispatch(ev api.Evaluator, f *api.Frame, p *port.Port, action api.Word) api.Outcome {
	if !p.Valid() {
		return api.InvalidPort()
	}

	var out api.Outcome
	switch a := p.Actor.(type) {
	case nil:
		return api.Absent()
	case port.NativeActor:
		out = a.Entry(f, p, action)
	case port.ObjectActor:
		hv, ok := a.Handlers.Get(string(action))
		if !ok {
			return api.NoPortAction(action)
		}
		hf, ok := hv.(*api.Function)
		if !ok || hf.Body == nil {
			return api.NoPortAction(action)
		}
		out = Redirect(ev, f, hf)
	default:
		return api.InvalidPort()
	}

	if out.Kind == api.OutValue && action == api.ActionRead {
		out.Val = normalizeRead(f, out.Val)
	}
	return out
}

// normalizeRead decodes a raw binary Read result into a string when
// the caller asked for string or line output, and further splits it
// into line records for line output. Backends never duplicate this.
func normalizeRead(f *api.Frame, v api.Value) api.Value {
	if f == nil || f.Fn == nil {
		return v
	}
	wantLines := f.Enabled("lines")
	wantString := f.Enabled("string")
	if !wantLines && !wantString {
		return v
	}
	bin, ok := v.(api.Binary)
	if !ok {
		return v
	}
	s := string(bin) // UTF-8 decode
	if !wantLines {
		return api.Str(s)
	}
	return splitLines(s)
}

// splitLines breaks text into a block of line strings. LF terminates a
// line; a trailing CR is trimmed. A terminator on the final line does
// not produce an empty trailing record.
func splitLines(s string) api.Block {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return api.Block{}
	}
	parts := strings.Split(s, "\n")
	out := make(api.Block, 0, len(parts))
	for _, ln := range parts {
		out = append(out, api.Str(strings.TrimSuffix(ln, "\r")))
	}
	return out
}
