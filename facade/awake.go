// File: facade/awake.go
// Default wake predicate for the system port.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

// defaultAwake builds the system port's wake predicate: a function
// value applied by the scheduler to (pending-or-none, only).
//
// One pass: expire due timers, move every ready port from the pending
// set to the waked set, and report satisfaction. With only enabled the
// wait is satisfied just when a woken port belongs to the caller's
// pending block; otherwise any woken port satisfies it.
func (r *Runtime) defaultAwake() *api.Function {
	return &api.Function{
		Name: "system-awake",
		Params: []api.Param{
			{Name: "ports", Class: api.ParamNormal},
			{Name: "only", Class: api.ParamNormal},
		},
		Body: func(f *api.Frame) api.Outcome {
			portsArg := f.Arg("ports")
			only := api.Truthy(f.Arg("only"))

			var caller api.Block
			if b, ok := portsArg.(api.Block); ok {
				caller = b
			}

			pq := r.sys.PendingQueue()
			wq := r.sys.WakedQueue()
			if pq == nil || wq == nil {
				return api.ValueOf(api.Logic(false))
			}

			satisfied := false
			n := pq.Length()
			for i := 0; i < n; i++ {
				v := pq.Remove()
				p, ok := v.(*port.Port)
				if !ok {
					continue
				}
				r.backends.Expire(p)
				req, hasReq := port.Request(p)
				if !hasReq || !req.Ready() {
					pq.Add(v)
					continue
				}
				wq.Add(p)
				if !only || inBlock(caller, p) {
					satisfied = true
				}
			}
			return api.ValueOf(api.Logic(satisfied))
		},
	}
}

func inBlock(b api.Block, p *port.Port) bool {
	for _, v := range b {
		if v == p {
			return true
		}
	}
	return false
}
