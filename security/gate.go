// File: security/gate.go
// Package security implements policy lookup and enforcement for
// read/write operations against named resources.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package security

import "github.com/momentics/portio/api"

// Access holds the independent permission bits a policy yields.
type Access struct {
	Read    bool
	Write   bool
	Execute bool
}

// Mode flags requested by an operation.
type Mode uint8

const (
	ModeRead Mode = 1 << iota
	ModeWrite
)

// PolicyTable is the collaborator policy source. Lookups are fresh on
// every check: policy may depend on path specificity and is never
// cached by the gate.
type PolicyTable interface {
	Lookup(kind, target string) Access
}

// Gate enforces a policy table.
type Gate struct {
	Table PolicyTable
}

// NewGate creates a gate over the given table.
func NewGate(table PolicyTable) *Gate {
	return &Gate{Table: table}
}

// Check traps when mode requests an access the policy forbids for
// (kind, target). The trap names both.
func (g *Gate) Check(kind, target string, mode Mode) error {
	acc := g.Table.Lookup(kind, target)
	if mode&ModeRead != 0 && !acc.Read {
		return trap(kind, target, "read")
	}
	if mode&ModeWrite != 0 && !acc.Write {
		return trap(kind, target, "write")
	}
	return nil
}

func trap(kind, target, op string) error {
	return api.NewError(api.ErrCodeSecurity, "access denied").
		WithContext("kind", kind).
		WithContext("target", target).
		WithContext("op", op)
}

// AllowAll is a policy table granting every access.
type AllowAll struct{}

// Lookup implements PolicyTable.
func (AllowAll) Lookup(string, string) Access {
	return Access{Read: true, Write: true, Execute: true}
}
