package form

import "github.com/AlenaMolokova/checkout/internal/constants"

// State maps every gating field to its validity. The zero state has every
// field invalid.
type State struct {
	valid map[constants.Field]bool
}

func NewState() *State {
	s := &State{valid: make(map[constants.Field]bool, len(constants.Fields))}
	for _, f := range constants.Fields {
		s.valid[f] = false
	}
	return s
}

// Set records the validity of f and returns the new Ready result.
func (s *State) Set(f constants.Field, ok bool) bool {
	s.valid[f] = ok
	return s.Ready()
}

func (s *State) Valid(f constants.Field) bool {
	return s.valid[f]
}

// Ready reports whether every gating field is valid.
func (s *State) Ready() bool {
	for _, f := range constants.Fields {
		if !s.valid[f] {
			return false
		}
	}
	return true
}

// Snapshot copies the current flags.
func (s *State) Snapshot() map[constants.Field]bool {
	out := make(map[constants.Field]bool, len(s.valid))
	for f, ok := range s.valid {
		out[f] = ok
	}
	return out
}
