// File: schemes/memory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Memory backend: an in-memory read/write buffer. Exercises the full
// device request lifecycle and the dispatcher's read normalization.

package schemes

import (
	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/security"
)

const defaultMemorySize = 4096

// Memory is the in-memory buffer backend.
func (b *Backends) Memory(f *api.Frame, p *port.Port, action api.Word) api.Outcome {
	switch action {
	case api.ActionOpen:
		size := defaultMemorySize
		if v, ok := p.Spec.Get("size"); ok {
			if n, ok := v.(int); ok && n > 0 {
				size = n
			}
		}
		req := port.EnsureRequest(p, port.DevMemory, size)
		// pending until data arrives; write completes the request
		req.Flags |= port.ReqOpen | port.ReqPending
		return api.ValueOf(p)

	case api.ActionClose:
		if req, ok := port.Request(p); ok {
			req.Flags &^= port.ReqOpen | port.ReqPending
			req.Payload = req.Payload[:0]
		}
		return api.ValueOf(p)

	case api.ActionWrite:
		if err := b.Gate.Check("memory", targetOf(p), security.ModeWrite); err != nil {
			return fail(err)
		}
		req, ok := port.Request(p)
		if !ok || req.Flags&port.ReqOpen == 0 {
			return fail(api.NewError(api.ErrCodeInvalidCall, "memory port not open"))
		}
		switch d := f.Arg("data").(type) {
		case api.Binary:
			req.Payload = append(req.Payload, d...)
		case api.Str:
			req.Payload = append(req.Payload, d...)
		default:
			return fail(api.NewError(api.ErrCodeInvalidCall, "memory write needs string or binary"))
		}
		// data available: complete any pending read interest
		req.Complete()
		return api.ValueOf(p)

	case api.ActionRead:
		if err := b.Gate.Check("memory", targetOf(p), security.ModeRead); err != nil {
			return fail(err)
		}
		req, ok := port.Request(p)
		if !ok || req.Flags&port.ReqOpen == 0 {
			return fail(api.NewError(api.ErrCodeInvalidCall, "memory port not open"))
		}
		out := make(api.Binary, len(req.Payload))
		copy(out, req.Payload)
		return api.ValueOf(out)

	case api.ActionQuery:
		req, _ := port.Request(p)
		info := api.NewObject().Set("scheme", api.Word("memory"))
		if req != nil {
			info.Set("size", len(req.Payload))
			info.Set("open", api.Logic(req.Flags&port.ReqOpen != 0))
		}
		return api.ValueOf(info)
	}
	return api.NoPortAction(action)
}
