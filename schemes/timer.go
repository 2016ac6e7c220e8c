// File: schemes/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Timer backend: a port that becomes ready once its deadline passes.
// The spec field "delay" is the delay in milliseconds.

package schemes

import (
	"time"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

// Timer is the deadline backend.
func (b *Backends) Timer(f *api.Frame, p *port.Port, action api.Word) api.Outcome {
	switch action {
	case api.ActionOpen:
		delayMS := 0
		if v, ok := p.Spec.Get("delay"); ok {
			if n, ok := v.(int); ok && n >= 0 {
				delayMS = n
			}
		}
		req := port.EnsureRequest(p, port.DevTimer, 0)
		req.Deadline = b.Now().Add(time.Duration(delayMS) * time.Millisecond).UnixNano()
		req.Flags |= port.ReqOpen | port.ReqPending
		return api.ValueOf(p)

	case api.ActionClose:
		if req, ok := port.Request(p); ok {
			req.Flags &^= port.ReqOpen | port.ReqPending
		}
		return api.ValueOf(p)

	case api.ActionQuery:
		req, ok := port.Request(p)
		info := api.NewObject().Set("scheme", api.Word("timer"))
		if ok {
			remain := req.Deadline - b.Now().UnixNano()
			if remain < 0 {
				remain = 0
			}
			info.Set("remaining_ms", int(remain/int64(time.Millisecond)))
			info.Set("open", api.Logic(req.Flags&port.ReqOpen != 0))
		}
		return api.ValueOf(info)
	}
	return api.NoPortAction(action)
}

// Expire completes timer requests whose deadline has passed. The wake
// predicate calls this once per pass before checking readiness.
func (b *Backends) Expire(p *port.Port) {
	req, ok := port.Request(p)
	if !ok || req.Kind != port.DevTimer {
		return
	}
	if req.Flags&port.ReqPending != 0 && b.Now().UnixNano() >= req.Deadline {
		req.Complete()
	}
}
