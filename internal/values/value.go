package values

type ValueType string

const (
	INTEGER_VAL  = "INTEGER"
	FLOAT_VAL    = "FLOAT"
	BOOLEAN_VAL  = "BOOLEAN"
	TEXT_VAL     = "TEXT"
	NIL_VAL      = "NIL"
	HOST_VAL     = "HOST"     // Foreign/polyglot value backed by a Go object
	DATAFLOW_VAL = "DATAFLOW" // Error flowing through normal value channels
	PANIC_VAL    = "PANIC"    // Pre-triggered fatal sentinel
	WARNING_VAL  = "WARNING"  // Inner value plus accumulated warnings
)

// Value is the dispatch receiver. Shapes overlap and nest: a WithWarnings
// value wraps any other Value, including another wrapper. The dispatch
// engine strips at most one layer per strategy step.
type Value interface {
	Type() ValueType
	Inspect() string
	// TypeName is the dynamic type name used for method table lookup
	// and no-such-method reporting.
	TypeName() string
}
