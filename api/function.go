// File: api/function.go
// Package api defines function values and call frames.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ParamClass classifies a function parameter.
type ParamClass uint8

const (
	// ParamNormal is an ordinary evaluated argument slot.
	ParamNormal ParamClass = iota
	// ParamRefinement is an optional flag parameter; when enabled it
	// activates the normal parameters that follow it.
	ParamRefinement
	// ParamLocal is a local slot, never bound from a call.
	ParamLocal
	// ParamReturn is the definitional return slot.
	ParamReturn
	// ParamLeave is the definitional leave slot.
	ParamLeave
)

// Param is one parameter of a function value.
type Param struct {
	Name  string
	Class ParamClass
}

// Function is a callable value: a parameter list plus a host body.
// The body receives a Frame with every parameter already bound.
type Function struct {
	Name   string
	Params []Param
	Body   func(f *Frame) Outcome
}

// Frame is a call frame: a function plus its already-evaluated
// arguments, parallel to the parameter list. Refinement slots hold
// Logic; unbound slots hold None.
type Frame struct {
	Fn   *Function
	Args []Value
}

// Arg returns the bound value of the named parameter, or None.
func (f *Frame) Arg(name string) Value {
	for i, p := range f.Fn.Params {
		if p.Name == name && i < len(f.Args) {
			return f.Args[i]
		}
	}
	return None{}
}

// Enabled reports whether the named refinement is enabled in the frame.
func (f *Frame) Enabled(name string) bool {
	return Truthy(f.Arg(name))
}
