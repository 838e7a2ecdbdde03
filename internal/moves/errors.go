package moves

import (
	"fmt"
	"strings"
)

// InvalidMoveSetError reports a move list that cannot form a game.
type InvalidMoveSetError struct {
	Moves  []string
	Reason string
}

func (e *InvalidMoveSetError) Error() string {
	return fmt.Sprintf("invalid move set [%s]: %s", strings.Join(e.Moves, ", "), e.Reason)
}

// UnknownMoveError reports a move that is not part of the table.
type UnknownMoveError struct {
	Move string
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("unknown move %q", e.Move)
}
