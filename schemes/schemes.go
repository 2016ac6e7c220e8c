// File: schemes/schemes.go
// Package schemes provides the thin built-in backends registered at
// startup: console, memory and timer. Each is a native actor in the
// PAF signature; real per-scheme device mechanics live outside the
// port runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package schemes

import (
	"io"
	"os"
	"time"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
	"github.com/momentics/portio/scheme"
	"github.com/momentics/portio/security"
)

// Backends bundles the built-in native actors with their shared
// collaborators.
type Backends struct {
	Gate *security.Gate
	Out  io.Writer        // console sink
	Now  func() time.Time // timer clock
}

// NewBackends wires the built-in backends. A nil gate allows all.
func NewBackends(gate *security.Gate) *Backends {
	if gate == nil {
		gate = security.NewGate(security.AllowAll{})
	}
	return &Backends{Gate: gate, Out: os.Stdout, Now: time.Now}
}

// RegisterAll registers every built-in scheme. Called once during the
// single-threaded startup phase.
func (b *Backends) RegisterAll() {
	scheme.Register("console", b.Console)
	scheme.Register("memory", b.Memory)
	scheme.Register("timer", b.Timer)
}

func fail(err error) api.Outcome {
	if se, ok := err.(*api.Error); ok && se.Code == api.ErrCodeSecurity {
		return api.Thrown(api.ThrownSecurity, se)
	}
	return api.Thrown("error", err)
}

func targetOf(p *port.Port) string {
	if v, ok := p.Spec.Get("target"); ok {
		switch t := v.(type) {
		case api.Str:
			return string(t)
		case string:
			return t
		}
	}
	return ""
}
