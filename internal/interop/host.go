package interop

import (
	"fmt"
	"reflect"

	"github.com/miralang/mira/internal/values"
)

// HostAccess resolves foreign calls against Go objects wrapped in
// values.Host, using reflection for member lookup and invocation.
type HostAccess struct{}

func NewHostAccess() *HostAccess {
	return &HostAccess{}
}

// Classify reports how symbol applies to receiver. Only Host receivers are
// classifiable; everything else is NotSupported and falls through to the
// universal registry.
func (h *HostAccess) Classify(receiver values.Value, symbol string) CallKind {
	host, ok := receiver.(*values.Host)
	if !ok {
		return NotSupported
	}
	if _, isStr := host.Value.(string); isStr {
		return ConvertToText
	}
	if host.Value == nil {
		return NotSupported
	}

	val := reflect.ValueOf(host.Value)
	if val.MethodByName(symbol).IsValid() {
		return CallMethod
	}

	indirect := val
	if val.Kind() == reflect.Ptr {
		indirect = val.Elem()
	}
	if indirect.Kind() == reflect.Struct && indirect.FieldByName(symbol).IsValid() {
		return GetMember
	}
	return NotSupported
}

// CoerceToText converts a string-backed host receiver to a Text value.
func (h *HostAccess) CoerceToText(receiver values.Value) (*values.Text, error) {
	host, ok := receiver.(*values.Host)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %s to Text", receiver.TypeName())
	}
	str, ok := host.Value.(string)
	if !ok {
		return nil, fmt.Errorf("cannot coerce host %T to Text", host.Value)
	}
	return &values.Text{Value: str}, nil
}

// InvokeForeign performs a classified foreign call with already-forced
// arguments. Host methods returning a Go error yield a dataflow error value,
// not a Go-level failure.
func (h *HostAccess) InvokeForeign(kind CallKind, symbol string, receiver values.Value, args []values.Value) (values.Value, error) {
	host, ok := receiver.(*values.Host)
	if !ok {
		return nil, fmt.Errorf("foreign call on non-host receiver %s", receiver.TypeName())
	}
	val := reflect.ValueOf(host.Value)

	switch kind {
	case CallMethod:
		method := val.MethodByName(symbol)
		if !method.IsValid() {
			return nil, fmt.Errorf("host method %s not found on %T", symbol, host.Value)
		}
		in, err := marshalArgs(method.Type(), args)
		if err != nil {
			return nil, fmt.Errorf("host call %s: %v", symbol, err)
		}
		return unmarshalResults(symbol, method.Call(in))
	case GetMember:
		indirect := val
		if val.Kind() == reflect.Ptr {
			indirect = val.Elem()
		}
		field := indirect.FieldByName(symbol)
		if !field.IsValid() {
			return nil, fmt.Errorf("host member %s not found on %T", symbol, host.Value)
		}
		return ToValue(field.Interface()), nil
	default:
		return nil, fmt.Errorf("unsupported foreign call kind %s", kind)
	}
}

// marshalArgs converts forced argument values to the reflect values expected
// by the method signature.
func marshalArgs(mt reflect.Type, args []values.Value) ([]reflect.Value, error) {
	if mt.IsVariadic() {
		return nil, fmt.Errorf("variadic host methods are not supported")
	}
	if mt.NumIn() != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", mt.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		goVal := FromValue(arg)
		rv := reflect.ValueOf(goVal)
		want := mt.In(i)
		if goVal == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		if !rv.Type().AssignableTo(want) {
			if rv.Type().ConvertibleTo(want) {
				rv = rv.Convert(want)
			} else {
				return nil, fmt.Errorf("argument %d: cannot use %T as %s", i, goVal, want)
			}
		}
		in[i] = rv
	}
	return in, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// unmarshalResults maps Go return conventions onto mira values: a non-nil
// error return becomes a dataflow error, no results become Nil.
func unmarshalResults(symbol string, out []reflect.Value) (values.Value, error) {
	var result values.Value = &values.Nil{}
	for i, rv := range out {
		if rv.Type().Implements(errType) {
			if !rv.IsNil() {
				return &values.DataflowError{
					Kind:    "Host.Error",
					Payload: &values.Text{Value: rv.Interface().(error).Error()},
				}, nil
			}
			continue
		}
		if i == 0 {
			result = ToValue(rv.Interface())
		}
	}
	return result, nil
}
