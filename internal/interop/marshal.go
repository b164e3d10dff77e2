package interop

import "github.com/miralang/mira/internal/values"

// ToValue converts a Go value to a mira value. Unrecognized Go types stay
// wrapped as Host so their members remain reachable through foreign dispatch.
func ToValue(goVal interface{}) values.Value {
	switch v := goVal.(type) {
	case nil:
		return &values.Nil{}
	case values.Value:
		return v
	case bool:
		return &values.Boolean{Value: v}
	case int:
		return &values.Integer{Value: int64(v)}
	case int32:
		return &values.Integer{Value: int64(v)}
	case int64:
		return &values.Integer{Value: v}
	case float32:
		return &values.Float{Value: float64(v)}
	case float64:
		return &values.Float{Value: v}
	case string:
		return &values.Text{Value: v}
	default:
		return &values.Host{Value: goVal}
	}
}

// FromValue converts a mira value to a plain Go value for host calls.
func FromValue(v values.Value) interface{} {
	switch val := v.(type) {
	case *values.Nil:
		return nil
	case *values.Boolean:
		return val.Value
	case *values.Integer:
		return val.Value
	case *values.Float:
		return val.Value
	case *values.Text:
		return val.Value
	case *values.Host:
		return val.Value
	default:
		return v
	}
}
