package values

// State threads interpreter-wide context through dispatch and argument
// forcing. Updates produce a new State; effects from forcing argument i are
// visible while forcing argument i+1 because the updated state is what gets
// passed along.
type State struct {
	parent *State
	key    string
	value  Value
}

func EmptyState() *State {
	return nil
}

// With returns a state with key bound to v, shadowing any earlier binding.
func (s *State) With(key string, v Value) *State {
	return &State{parent: s, key: key, value: v}
}

func (s *State) Get(key string) (Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}
