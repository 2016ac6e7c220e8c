// File: api/value.go
// Package api defines the value model shared across the port runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Values are late-bound: the dispatcher and scheduler never assume more
// about a value than the concrete kinds declared here.

package api

// Value is any runtime value. Concrete kinds used by the core are the
// types below; everything else is opaque and passed through untouched.
type Value = any

// Word is a symbol: an action name, scheme name or field name.
type Word string

// Refinement is a refinement token inside a synthetic call vector.
// It enables the refinement parameter of the same name on the callee.
type Refinement string

// Logic is a boolean value.
type Logic bool

// Str is a character string.
type Str string

// Binary is a raw byte sequence.
type Binary []byte

// Block is an ordered sequence of values.
type Block []Value

// None is the absent value.
type None struct{}

// Truthy reports the logic interpretation of v: nil, None and
// Logic(false) are false, everything else is true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case None:
		return false
	case Logic:
		return bool(t)
	}
	return true
}

// Object is a string-keyed record preserving field order.
// Port specs and object-actor handler tables are Objects.
type Object struct {
	names  []string
	fields map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Set writes or overwrites a field.
func (o *Object) Set(name string, v Value) *Object {
	if _, ok := o.fields[name]; !ok {
		o.names = append(o.names, name)
	}
	o.fields[name] = v
	return o
}

// Get reads a field; ok is false when the field is absent.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Len returns the field count.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Names returns the field names in insertion order.
func (o *Object) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}
