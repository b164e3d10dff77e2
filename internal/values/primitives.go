package values

import (
	"fmt"
	"strconv"

	"github.com/miralang/mira/internal/config"
)

type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType  { return INTEGER_VAL }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) TypeName() string { return config.IntTypeName }

type Float struct {
	Value float64
}

func (f *Float) Type() ValueType  { return FLOAT_VAL }
func (f *Float) Inspect() string  { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *Float) TypeName() string { return config.FloatTypeName }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType  { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) TypeName() string { return config.BoolTypeName }

type Text struct {
	Value string
}

func (t *Text) Type() ValueType  { return TEXT_VAL }
func (t *Text) Inspect() string  { return fmt.Sprintf("%q", t.Value) }
func (t *Text) TypeName() string { return config.TextTypeName }

type Nil struct{}

func (n *Nil) Type() ValueType  { return NIL_VAL }
func (n *Nil) Inspect() string  { return "nil" }
func (n *Nil) TypeName() string { return config.NilTypeName }

// Host wraps a Go value for use as a foreign/polyglot receiver or argument.
// Member resolution goes through the interop capability, not the method
// tables.
type Host struct {
	Value interface{}
}

func (h *Host) Type() ValueType  { return HOST_VAL }
func (h *Host) Inspect() string  { return fmt.Sprintf("<Host: %T %+v>", h.Value, h.Value) }
func (h *Host) TypeName() string { return config.HostTypeName }
