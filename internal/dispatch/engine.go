package dispatch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/miralang/mira/internal/diagnostics"
	"github.com/miralang/mira/internal/interop"
	"github.com/miralang/mira/internal/values"
)

// Engine bundles the dispatch collaborators: the method tables and the
// interop capability. Call sites created from one engine share them.
type Engine struct {
	Methods      *MethodTable
	ErrorMethods *ErrorMethodTable
	Universal    *UniversalTable
	Interop      interop.Capability
}

func NewEngine(capability interop.Capability) *Engine {
	if capability == nil {
		capability = interop.NewHostAccess()
	}
	return &Engine{
		Methods:      NewMethodTable(),
		ErrorMethods: NewErrorMethodTable(),
		Universal:    NewUniversalTable(),
		Interop:      capability,
	}
}

// CallSite dispatches one syntactic method call. It is shared between
// concurrently executing call stacks: the lazily-built child dispatcher and
// the classification cache are the only mutable state, both safe for
// concurrent use.
type CallSite struct {
	engine  *Engine
	id      uuid.UUID
	argc    int
	selfPos int

	childOnce sync.Once
	child     *CallSite

	cache dispatchCache
}

// NewCallSite creates a call site for argc argument slots with the receiver
// thunk at selfPos.
func (e *Engine) NewCallSite(argc, selfPos int) *CallSite {
	return &CallSite{
		engine:  e,
		id:      uuid.New(),
		argc:    argc,
		selfPos: selfPos,
	}
}

// ID is the expression ID of this call site.
func (cs *CallSite) ID() uuid.UUID {
	return cs.id
}

// hasFunctionalDispatch reports whether the receiver shape resolves symbols
// through its own method table. Error, panic, warning and foreign shapes use
// dedicated strategies instead.
func hasFunctionalDispatch(v values.Value) bool {
	switch v.(type) {
	case *values.DataflowError, *values.PanicSentinel, *values.WithWarnings, *values.Host:
		return false
	}
	return true
}

// Invoke resolves sym against self and runs the resulting call. args holds
// the argument thunks with the receiver slot at the call site's selfPos; how
// many of them are forced, and when, is up to the chosen strategy.
//
// Dataflow errors come back as ordinary values. A panic-sentinel receiver
// aborts the call stack via panic. The returned error is either a
// *NoSuchMethodError or a *diagnostics.InternalError.
func (cs *CallSite) Invoke(st *values.State, sym Symbol, self values.Value, args []values.Thunk) (*values.State, values.Value, error) {
	// Strategy 1: the receiver type's own method wins and receives the
	// thunks unforced.
	if hasFunctionalDispatch(self) {
		if fn, ok := cs.engine.Methods.Lookup(self.TypeName(), sym); ok {
			return fn.Invoke(st, args)
		}
	}

	switch recv := self.(type) {
	case *values.DataflowError:
		// Strategy 2: errors propagate untouched unless their kind registers
		// an explicit handler for the symbol.
		if fn, ok := cs.engine.ErrorMethods.Lookup(recv.Kind, sym); ok {
			return fn.Invoke(st, args)
		}
		return st, recv, nil
	case *values.PanicSentinel:
		// Strategy 3: not a value flow. Aborts the enclosing computation
		// before any argument is forced.
		panic(recv)
	case *values.WithWarnings:
		// Strategy 4.
		return cs.invokeOnWarned(st, sym, recv, args)
	}

	kind := cs.cache.classify(cs.engine.Interop, self, sym.Name)
	switch kind {
	case interop.ConvertToText:
		// Strategy 6.
		return cs.invokeViaText(st, sym, self, args)
	case interop.NotSupported:
		// Strategy 7: universal registry, then structured failure.
		if fn, ok := cs.engine.Universal.Lookup(sym); ok {
			return fn.Invoke(st, args)
		}
		return st, nil, &NoSuchMethodError{Receiver: self, Symbol: sym.Name}
	default:
		// Strategy 5.
		return cs.invokeForeign(st, kind, sym, self, args)
	}
}

// invokeOnWarned unwraps a warning-carrying receiver, redispatches against
// the inner value through a lazily-built child call site, and rewraps the
// result with the original warnings ahead of any new ones.
func (cs *CallSite) invokeOnWarned(st *values.State, sym Symbol, recv *values.WithWarnings, args []values.Thunk) (*values.State, values.Value, error) {
	cs.childOnce.Do(func() {
		cs.child = cs.engine.NewCallSite(cs.argc, cs.selfPos)
	})

	inner := recv.Value
	childArgs := make([]values.Thunk, len(args))
	copy(childArgs, args)
	if cs.selfPos < len(childArgs) {
		childArgs[cs.selfPos] = values.Ready(inner)
	}

	st, res, err := cs.child.Invoke(st, sym, inner, childArgs)
	if err != nil {
		return st, nil, err
	}
	return st, values.AttachWarnings(res, recv.Warnings), nil
}

// invokeForeign forces the argument thunks left to right, threading state
// through each. The first dataflow error short-circuits: nothing further is
// forced and the foreign call never happens. Warnings on arguments are
// stripped for the call and reattached to its result in first-seen order.
func (cs *CallSite) invokeForeign(st *values.State, kind interop.CallKind, sym Symbol, self values.Value, args []values.Thunk) (*values.State, values.Value, error) {
	forced := make([]values.Value, 0, len(args))
	var warnings []values.Warning
	for i, arg := range args {
		if i == cs.selfPos {
			continue
		}
		var v values.Value
		st, v = arg(st)
		if errVal, ok := v.(*values.DataflowError); ok {
			return st, errVal, nil
		}
		if warned, ok := v.(*values.WithWarnings); ok {
			warnings = append(warnings, warned.Warnings...)
			v = warned.Value
		}
		forced = append(forced, v)
	}

	res, err := cs.engine.Interop.InvokeForeign(kind, sym.Name, self, forced)
	if err != nil {
		return st, nil, err
	}
	if len(warnings) > 0 {
		res = values.AttachWarnings(res, warnings)
	}
	return st, res, nil
}

// invokeViaText coerces the receiver to Text and redispatches against Text's
// own method table. The classifier already guaranteed the coercion, so a
// failure here is an engine defect, not a user error.
func (cs *CallSite) invokeViaText(st *values.State, sym Symbol, self values.Value, args []values.Thunk) (*values.State, values.Value, error) {
	txt, err := cs.engine.Interop.CoerceToText(self)
	if err != nil {
		return st, nil, diagnostics.Internalf("text coercion failed after ConvertToText classification: %v", err)
	}

	fn, ok := cs.engine.Methods.Lookup(txt.TypeName(), sym)
	if !ok {
		return st, nil, &NoSuchMethodError{Receiver: txt, Symbol: sym.Name}
	}

	textArgs := make([]values.Thunk, len(args))
	copy(textArgs, args)
	if cs.selfPos < len(textArgs) {
		textArgs[cs.selfPos] = values.Ready(txt)
	}
	return fn.Invoke(st, textArgs)
}
