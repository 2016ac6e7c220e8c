// File: schemes/console.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package schemes

import (
	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/security"
)

// Console is the write-only console backend.
func (b *Backends) Console(f *api.Frame, p *port.Port, action api.Word) api.Outcome {
	switch action {
	case api.ActionOpen:
		req := port.EnsureRequest(p, port.DevConsole, 0)
		req.Flags |= port.ReqOpen
		return api.ValueOf(p)
	case api.ActionClose:
		if req, ok := port.Request(p); ok {
			req.Flags &^= port.ReqOpen
		}
		return api.ValueOf(p)
	case api.ActionWrite:
		if err := b.Gate.Check("console", targetOf(p), security.ModeWrite); err != nil {
			return fail(err)
		}
		data := f.Arg("data")
		var raw []byte
		switch d := data.(type) {
		case api.Binary:
			raw = d
		case api.Str:
			raw = []byte(d)
		default:
			return fail(api.NewError(api.ErrCodeInvalidCall, "console write needs string or binary"))
		}
		if _, err := b.Out.Write(raw); err != nil {
			return fail(err)
		}
		return api.ValueOf(p)
	}
	return api.NoPortAction(action)
}
