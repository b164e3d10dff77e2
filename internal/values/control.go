package values

import (
	"fmt"

	"github.com/miralang/mira/internal/config"
)

// DataflowError is a failure travelling through normal value channels. It is
// not an exception: calls on it propagate it untouched unless the receiver's
// error kind registers an explicit handler for the symbol.
type DataflowError struct {
	Kind    string // error kind, keys the error-method table
	Payload Value
}

func (e *DataflowError) Type() ValueType { return DATAFLOW_VAL }
func (e *DataflowError) Inspect() string {
	if e.Payload == nil {
		return fmt.Sprintf("Error(%s)", e.Kind)
	}
	return fmt.Sprintf("Error(%s: %s)", e.Kind, e.Payload.Inspect())
}
func (e *DataflowError) TypeName() string { return config.ErrorTypeName }

// PanicSentinel is a pre-triggered fatal condition. Dispatching any symbol on
// it aborts the enclosing computation chain; it is never returned as a normal
// result.
type PanicSentinel struct {
	Payload Value
}

func (p *PanicSentinel) Type() ValueType { return PANIC_VAL }
func (p *PanicSentinel) Inspect() string {
	if p.Payload == nil {
		return "Panic"
	}
	return fmt.Sprintf("Panic(%s)", p.Payload.Inspect())
}
func (p *PanicSentinel) TypeName() string { return config.PanicTypeName }
