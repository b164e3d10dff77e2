package dispatch

import "github.com/miralang/mira/internal/values"

// Symbol is an unresolved method name attached to a call site. It is resolved
// dynamically on every invocation: the same symbol can land on different
// functions across calls when receiver shapes differ.
type Symbol struct {
	Name string
}

func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// Function is a resolved callable. It receives the argument thunks unforced
// and decides itself which ones to evaluate, preserving call-by-need.
type Function struct {
	Name string
	Fn   func(st *values.State, args []values.Thunk) (*values.State, values.Value, error)
}

func (f *Function) Invoke(st *values.State, args []values.Thunk) (*values.State, values.Value, error) {
	return f.Fn(st, args)
}
