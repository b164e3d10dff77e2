package interop

import (
	"github.com/miralang/mira/internal/values"
)

// CallKind classifies a (receiver, symbol) pair for foreign dispatch.
type CallKind int

const (
	NotSupported CallKind = iota
	CallMethod
	GetMember
	ConvertToText
)

func (k CallKind) String() string {
	switch k {
	case CallMethod:
		return "CallMethod"
	case GetMember:
		return "GetMember"
	case ConvertToText:
		return "ConvertToText"
	default:
		return "NotSupported"
	}
}

// Classifier decides how a symbol applies to a foreign receiver. It must be a
// pure function of receiver shape and symbol name: the dispatch cache may
// invoke it speculatively.
type Classifier interface {
	Classify(receiver values.Value, symbol string) CallKind
}

// Capability is the interop surface the dispatch engine calls into.
// CoerceToText must not fail when Classify returned ConvertToText for the
// same receiver.
type Capability interface {
	Classifier
	CoerceToText(receiver values.Value) (*values.Text, error)
	InvokeForeign(kind CallKind, symbol string, receiver values.Value, args []values.Value) (values.Value, error)
}
