package values

import (
	"fmt"
	"strings"

	"github.com/miralang/mira/internal/config"
)

// Warning is an advisory note attached to a value. Warnings accumulate in
// first-seen order and are never deduplicated, reordered or dropped.
type Warning struct {
	Message string
}

// WithWarnings wraps an inner value plus its accumulated warnings. The inner
// value can itself be any shape, including another WithWarnings.
type WithWarnings struct {
	Value    Value
	Warnings []Warning
}

func (w *WithWarnings) Type() ValueType { return WARNING_VAL }
func (w *WithWarnings) Inspect() string {
	msgs := make([]string, len(w.Warnings))
	for i, warn := range w.Warnings {
		msgs[i] = warn.Message
	}
	return fmt.Sprintf("%s ! [%s]", w.Value.Inspect(), strings.Join(msgs, ", "))
}
func (w *WithWarnings) TypeName() string { return config.WarningTypeName }

// AttachWarnings wraps v with ws, flattening one wrapper layer so warning
// order stays original-then-new: ws come first, any warnings already on v
// follow.
func AttachWarnings(v Value, ws []Warning) Value {
	if len(ws) == 0 {
		return v
	}
	if inner, ok := v.(*WithWarnings); ok {
		merged := make([]Warning, 0, len(ws)+len(inner.Warnings))
		merged = append(merged, ws...)
		merged = append(merged, inner.Warnings...)
		return &WithWarnings{Value: inner.Value, Warnings: merged}
	}
	copied := make([]Warning, len(ws))
	copy(copied, ws)
	return &WithWarnings{Value: v, Warnings: copied}
}
