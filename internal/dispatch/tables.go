package dispatch

// MethodTable holds each type's own methods, keyed by type name and symbol
// name. This is the functional dispatch surface.
type MethodTable struct {
	methods map[string]map[string]*Function
}

func NewMethodTable() *MethodTable {
	return &MethodTable{methods: make(map[string]map[string]*Function)}
}

func (t *MethodTable) Register(typeName, symbol string, fn *Function) {
	if t.methods[typeName] == nil {
		t.methods[typeName] = make(map[string]*Function)
	}
	t.methods[typeName][symbol] = fn
}

func (t *MethodTable) Lookup(typeName string, sym Symbol) (*Function, bool) {
	fn, ok := t.methods[typeName][sym.Name]
	return fn, ok
}

// ErrorMethodTable holds the handlers callable on dataflow-error receivers,
// keyed by error kind and symbol name. A symbol absent here means the error
// propagates untouched.
type ErrorMethodTable struct {
	methods map[string]map[string]*Function
}

func NewErrorMethodTable() *ErrorMethodTable {
	return &ErrorMethodTable{methods: make(map[string]map[string]*Function)}
}

func (t *ErrorMethodTable) Register(kind, symbol string, fn *Function) {
	if t.methods[kind] == nil {
		t.methods[kind] = make(map[string]*Function)
	}
	t.methods[kind][symbol] = fn
}

func (t *ErrorMethodTable) Lookup(kind string, sym Symbol) (*Function, bool) {
	fn, ok := t.methods[kind][sym.Name]
	return fn, ok
}

// UniversalTable is the top-type method registry, queried only by the
// fallback strategy.
type UniversalTable struct {
	methods map[string]*Function
}

func NewUniversalTable() *UniversalTable {
	return &UniversalTable{methods: make(map[string]*Function)}
}

func (t *UniversalTable) Register(symbol string, fn *Function) {
	t.methods[symbol] = fn
}

func (t *UniversalTable) Lookup(sym Symbol) (*Function, bool) {
	fn, ok := t.methods[sym.Name]
	return fn, ok
}
