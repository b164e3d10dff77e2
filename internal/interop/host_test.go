package interop

import (
	"errors"
	"testing"

	"github.com/miralang/mira/internal/values"
)

type greeter struct {
	Name string
}

func (g *greeter) Greet(who string) string {
	return "hello " + who + ", I am " + g.Name
}

func (g *greeter) Fail() error {
	return errors.New("deliberate failure")
}

func TestClassifyKinds(t *testing.T) {
	access := NewHostAccess()
	host := &values.Host{Value: &greeter{Name: "mira"}}

	if kind := access.Classify(host, "Greet"); kind != CallMethod {
		t.Errorf("method lookup: expected CallMethod, got %s", kind)
	}
	if kind := access.Classify(host, "Name"); kind != GetMember {
		t.Errorf("field lookup: expected GetMember, got %s", kind)
	}
	if kind := access.Classify(host, "Missing"); kind != NotSupported {
		t.Errorf("missing member: expected NotSupported, got %s", kind)
	}
	if kind := access.Classify(&values.Host{Value: "text"}, "anything"); kind != ConvertToText {
		t.Errorf("string host: expected ConvertToText, got %s", kind)
	}
	if kind := access.Classify(&values.Integer{Value: 1}, "anything"); kind != NotSupported {
		t.Errorf("non-host receiver: expected NotSupported, got %s", kind)
	}
}

func TestCoerceToText(t *testing.T) {
	access := NewHostAccess()
	txt, err := access.CoerceToText(&values.Host{Value: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txt.Value != "hello" {
		t.Errorf("expected \"hello\", got %q", txt.Value)
	}
	if _, err := access.CoerceToText(&values.Host{Value: 42}); err == nil {
		t.Errorf("non-string host must not coerce")
	}
}

func TestInvokeForeignMethod(t *testing.T) {
	access := NewHostAccess()
	host := &values.Host{Value: &greeter{Name: "mira"}}

	res, err := access.InvokeForeign(CallMethod, "Greet", host, []values.Value{&values.Text{Value: "world"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	txt, ok := res.(*values.Text)
	if !ok || txt.Value != "hello world, I am mira" {
		t.Errorf("unexpected result: %s", res.Inspect())
	}
}

func TestInvokeForeignMember(t *testing.T) {
	access := NewHostAccess()
	host := &values.Host{Value: &greeter{Name: "mira"}}

	res, err := access.InvokeForeign(GetMember, "Name", host, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txt, ok := res.(*values.Text); !ok || txt.Value != "mira" {
		t.Errorf("unexpected result: %s", res.Inspect())
	}
}

func TestHostErrorBecomesDataflowError(t *testing.T) {
	access := NewHostAccess()
	host := &values.Host{Value: &greeter{}}

	res, err := access.InvokeForeign(CallMethod, "Fail", host, nil)
	if err != nil {
		t.Fatalf("host errors must surface as dataflow errors, got %v", err)
	}
	errVal, ok := res.(*values.DataflowError)
	if !ok {
		t.Fatalf("expected DataflowError, got %s", res.Inspect())
	}
	if errVal.Kind != "Host.Error" {
		t.Errorf("expected Host.Error kind, got %s", errVal.Kind)
	}
}

func TestInvokeForeignArgumentMismatch(t *testing.T) {
	access := NewHostAccess()
	host := &values.Host{Value: &greeter{}}

	if _, err := access.InvokeForeign(CallMethod, "Greet", host, nil); err == nil {
		t.Errorf("arity mismatch must fail")
	}
	if _, err := access.InvokeForeign(CallMethod, "Greet", host, []values.Value{&values.Boolean{Value: true}}); err == nil {
		t.Errorf("unconvertible argument must fail")
	}
}

func TestToValueRoundTrip(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{int(3), "3"},
		{int64(4), "4"},
		{1.5, "1.5"},
		{"s", `"s"`},
	}
	for _, tc := range cases {
		if got := ToValue(tc.in).Inspect(); got != tc.want {
			t.Errorf("ToValue(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, ok := ToValue(&greeter{}).(*values.Host); !ok {
		t.Errorf("unknown Go types must stay wrapped as Host")
	}
}
