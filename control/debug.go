// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registration for runtime introspection.

package control

import "sync"

// DebugProbes maps probe names to callbacks producing a live snapshot.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates an empty probe set.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// Register adds or replaces a named probe.
func (dp *DebugProbes) Register(name string, fn func() any) {
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// Collect runs every probe and returns the results by name.
func (dp *DebugProbes) Collect() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for name, fn := range dp.probes {
		out[name] = fn()
	}
	return out
}
