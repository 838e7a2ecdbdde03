package moves

import (
	"fmt"
	"strings"
)

// MinMoves is the smallest playable move count.
const MinMoves = 3

// MoveSet is an ordered list of unique move names. The order defines the
// circle the outcome table is built from.
type MoveSet struct {
	names []string
	index map[string]int
}

// NewMoveSet validates names and returns an immutable MoveSet.
func NewMoveSet(names []string) (MoveSet, error) {
	if err := validate(names); err != nil {
		return MoveSet{}, err
	}

	set := MoveSet{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(set.names, names)
	for i, name := range set.names {
		set.index[name] = i
	}
	return set, nil
}

func validate(names []string) error {
	invalid := func(format string, args ...any) error {
		return &InvalidMoveSetError{Moves: append([]string(nil), names...), Reason: fmt.Sprintf(format, args...)}
	}

	if len(names) < MinMoves {
		return invalid("need at least %d moves, got %d", MinMoves, len(names))
	}
	if len(names)%2 == 0 {
		return invalid("move count must be odd, got %d", len(names))
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return invalid("move names must not be blank")
		}
		if _, dup := seen[name]; dup {
			return invalid("duplicate move %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Len returns the number of moves.
func (s MoveSet) Len() int {
	return len(s.names)
}

// Half returns how many moves each move beats (and loses to).
func (s MoveSet) Half() int {
	return (len(s.names) - 1) / 2
}

// Names returns a copy of the move names in order.
func (s MoveSet) Names() []string {
	return append([]string(nil), s.names...)
}

// At returns the move at index i.
func (s MoveSet) At(i int) (string, error) {
	if i < 0 || i >= len(s.names) {
		return "", fmt.Errorf("move index %d out of range [0, %d)", i, len(s.names))
	}
	return s.names[i], nil
}

// Index returns the position of name, or -1 if it is not in the set.
func (s MoveSet) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Contains reports whether name is one of the moves.
func (s MoveSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// IsZero reports whether s was never built by NewMoveSet.
func (s MoveSet) IsZero() bool {
	return s.names == nil
}
