// File: scheme/installer.go
// Package scheme: binding a scheme description's actor slot to a
// registered native entry point (the set-scheme surface operation).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package scheme

import (
	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

// Install reads the description's name slot and, when the registry
// carries a native entry point for it, writes a native actor bound to
// that entry into the description's actor slot. Returns false as a
// deliberate no-op when no registry match exists: the caller may
// supply its own object-style actor instead.
func Install(desc *api.Object) bool {
	if desc == nil {
		return false
	}
	nv, ok := desc.Get("name")
	if !ok {
		return false
	}
	name, ok := nv.(api.Word)
	if !ok {
		return false
	}
	entry, ok := Find(name)
	if !ok || entry == nil {
		return false
	}
	desc.Set("actor", port.NativeActor{Name: name, Entry: entry})
	return true
}

// ActorFor resolves the actor for a port spec: a native actor when the
// scheme is registered, an object actor when the spec carries a
// handler table, nil otherwise.
func ActorFor(spec *api.Object) port.Actor {
	if spec == nil {
		return nil
	}
	if sv, ok := spec.Get("scheme"); ok {
		if name, ok := sv.(api.Word); ok {
			if entry, ok := Find(name); ok {
				return port.NativeActor{Name: name, Entry: entry}
			}
		}
	}
	if av, ok := spec.Get("actor"); ok {
		switch a := av.(type) {
		case port.NativeActor:
			return a
		case port.ObjectActor:
			return a
		case *api.Object:
			return port.ObjectActor{Handlers: a}
		}
	}
	return nil
}
