package moves

import "slices"

// OutcomeEntry lists the moves a move beats and the moves it loses to.
type OutcomeEntry struct {
	Move    string
	Beats   []string
	LosesTo []string
}

// OutcomeTable maps every move to its OutcomeEntry. It is never modified
// after Build and can be shared freely.
type OutcomeTable struct {
	moves   MoveSet
	entries map[string]OutcomeEntry
}

// Build computes the outcome table for moves. Move i beats moves
// i-1 ... i-half and loses to moves i+1 ... i+half, indices taken modulo N.
func Build(moves MoveSet) (*OutcomeTable, error) {
	if err := validate(moves.names); err != nil {
		return nil, err
	}

	n := moves.Len()
	half := moves.Half()
	entries := make(map[string]OutcomeEntry, n)

	for i, name := range moves.names {
		entry := OutcomeEntry{
			Move:    name,
			Beats:   make([]string, 0, half),
			LosesTo: make([]string, 0, half),
		}
		for step := 1; step <= half; step++ {
			entry.Beats = append(entry.Beats, moves.names[(i-step+n)%n])
			entry.LosesTo = append(entry.LosesTo, moves.names[(i+step)%n])
		}
		entries[name] = entry
	}

	return &OutcomeTable{moves: moves, entries: entries}, nil
}

// Moves returns the MoveSet the table was built from.
func (t *OutcomeTable) Moves() MoveSet {
	return t.moves
}

// Entry returns the entry for move.
func (t *OutcomeTable) Entry(move string) (OutcomeEntry, error) {
	entry, ok := t.entries[move]
	if !ok {
		return OutcomeEntry{}, &UnknownMoveError{Move: move}
	}
	return OutcomeEntry{
		Move:    entry.Move,
		Beats:   slices.Clone(entry.Beats),
		LosesTo: slices.Clone(entry.LosesTo),
	}, nil
}

// Resolve returns the outcome for actor when played against subject.
func (t *OutcomeTable) Resolve(actor, subject string) (Outcome, error) {
	entry, ok := t.entries[actor]
	if !ok {
		return Draw, &UnknownMoveError{Move: actor}
	}
	if _, ok := t.entries[subject]; !ok {
		return Draw, &UnknownMoveError{Move: subject}
	}

	switch {
	case actor == subject:
		return Draw, nil
	case slices.Contains(entry.Beats, subject):
		return Win, nil
	case slices.Contains(entry.LosesTo, subject):
		return Lose, nil
	}
	// Beats, LosesTo and the move itself cover the whole set.
	panic("moves: outcome table entry for " + actor + " does not cover " + subject)
}

// Grid returns the outcome of every row move (actor) against every column
// move (subject), both in MoveSet order.
func (t *OutcomeTable) Grid() [][]Outcome {
	names := t.moves.names
	grid := make([][]Outcome, len(names))
	for r, actor := range names {
		grid[r] = make([]Outcome, len(names))
		for c, subject := range names {
			outcome, _ := t.Resolve(actor, subject)
			grid[r][c] = outcome
		}
	}
	return grid
}
