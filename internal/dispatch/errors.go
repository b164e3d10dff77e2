package dispatch

import (
	"fmt"

	"github.com/miralang/mira/internal/values"
)

// NoSuchMethodError reports that no dispatch strategy resolved a symbol. It
// is a user-observable failure naming the receiver type and symbol, distinct
// from engine invariant violations.
type NoSuchMethodError struct {
	Receiver values.Value
	Symbol   string
}

func (e *NoSuchMethodError) Error() string {
	return fmt.Sprintf("no such method %q on %s (%s)", e.Symbol, e.Receiver.TypeName(), e.Receiver.Inspect())
}
