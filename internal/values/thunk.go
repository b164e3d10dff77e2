package values

// Thunk is a suspended argument computation. Forcing it yields the value and
// the possibly-updated state. Whether and when a thunk is forced is decided
// by the dispatch strategy, never eagerly at the call boundary.
type Thunk func(st *State) (*State, Value)

// Ready wraps an already-computed value as a thunk.
func Ready(v Value) Thunk {
	return func(st *State) (*State, Value) {
		return st, v
	}
}
