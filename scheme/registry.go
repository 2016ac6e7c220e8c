// File: scheme/registry.go
// Package scheme implements the process-wide scheme registry: a
// write-once-at-startup, fixed-capacity table mapping scheme names to
// native dispatch entry points.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The registry is populated during single-threaded startup and is
// read-only afterward, so no synchronization is used anywhere here.

package scheme

import (
	"fmt"

	"github.com/momentics/portio/api"
	"github.com/momentics/portio/port"
)

// Capacity is the fixed registry size, set at process init.
const Capacity = 12

// Entry binds a scheme name to its native dispatch entry point.
type Entry struct {
	Name  api.Word
	Entry port.PAF
}

var registry []Entry

// Init allocates the registry. Called once during runtime startup,
// before the first port is created.
func Init() {
	registry = make([]Entry, 0, Capacity)
}

// Shutdown releases the registry at process teardown.
func Shutdown() {
	registry = nil
}

// Register appends a scheme during the startup phase. Exceeding the
// fixed capacity is a programmer error, not a runtime condition.
func Register(name api.Word, entry port.PAF) {
	if registry == nil {
		Init()
	}
	if len(registry) >= Capacity {
		panic(fmt.Sprintf("scheme registry overflow: %q exceeds capacity %d", name, Capacity))
	}
	registry = append(registry, Entry{Name: name, Entry: entry})
}

// Find looks up a registered scheme by name.
func Find(name api.Word) (port.PAF, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e.Entry, true
		}
	}
	return nil, false
}

// Count returns the number of registered schemes.
func Count() int {
	return len(registry)
}
