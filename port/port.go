// File: port/port.go
// Package port implements the language-level port record and its
// dispatch actor union.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package port

import "github.com/momentics/portio/api"

// Port is the language-level port value: a spec, an opaque state blob,
// and a dispatch actor. The two queue-valued fields Awake and Data are
// populated only on the distinguished system port.
type Port struct {
	// Spec is the configuration object. A port is well-formed only
	// when Spec is a non-nil object.
	Spec *api.Object

	// State is either the port's device request blob or, for the
	// system port, the queue of pending ports being waited on.
	State api.Value

	// Actor is the dispatch target; nil means dispatch is a no-op.
	Actor Actor

	// Awake is the wake predicate; system port only.
	Awake api.Value

	// Data is the waked set: ports the wake predicate has determined
	// ready since the last sieve. System port only. It is read and
	// cleared as a unit by the scheduler, never partially consumed.
	Data api.Value
}

// New creates a well-formed port over the given spec.
func New(spec *api.Object) *Port {
	if spec == nil {
		spec = api.NewObject()
	}
	return &Port{Spec: spec}
}

// Valid reports the shape invariant: a non-nil record whose spec is an
// object. Malformed ports are rejected before any dispatch.
func (p *Port) Valid() bool {
	return p != nil && p.Spec != nil
}

// SchemeName returns the spec's scheme field, or "" when unset.
func (p *Port) SchemeName() api.Word {
	if p == nil || p.Spec == nil {
		return ""
	}
	if v, ok := p.Spec.Get("scheme"); ok {
		if w, ok := v.(api.Word); ok {
			return w
		}
	}
	return ""
}

// PAF is the native port-actor signature: the sole extension point
// every built-in scheme backend implements. The entry point is fully
// responsible for the action's behavior.
type PAF func(f *api.Frame, p *Port, action api.Word) api.Outcome

// Actor is the dispatch target bound to a port: a native entry point
// or a user-defined object of handler functions. The union is sealed;
// the dispatcher matches on the concrete arm.
type Actor interface {
	actor()
}

// NativeActor dispatches through a registered native entry point.
// It is the runtime's rendering of the minimal function value the
// scheme installer writes into a description's actor slot.
type NativeActor struct {
	Name  api.Word
	Entry PAF
}

// ObjectActor dispatches through a user-defined handler table keyed by
// action name; each handler is a function value.
type ObjectActor struct {
	Handlers *api.Object
}

func (NativeActor) actor() {}
func (ObjectActor) actor() {}
