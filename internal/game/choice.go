package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/rockpaper/internal/moves"
)

// ErrInvalidChoice is returned by ParseChoice for input that is neither a
// move nor a command.
var ErrInvalidChoice = errors.New("invalid choice")

// ChoiceKind says what the player asked for.
type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceExit
	ChoiceHelp
)

// Choice is a parsed line of player input.
type Choice struct {
	Kind ChoiceKind
	Move string
}

// ParseChoice accepts a 1-based menu number, a move name, "0" or "exit", and
// "?" or "help".
func ParseChoice(set moves.MoveSet, input string) (Choice, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "0", "exit", "quit":
		return Choice{Kind: ChoiceExit}, nil
	case "?", "help":
		return Choice{Kind: ChoiceHelp}, nil
	case "":
		return Choice{}, fmt.Errorf("%w: empty input", ErrInvalidChoice)
	}

	if n, err := strconv.Atoi(input); err == nil {
		move, err := set.At(n - 1)
		if err != nil {
			return Choice{}, fmt.Errorf("%w: pick a number from 1 to %d", ErrInvalidChoice, set.Len())
		}
		return Choice{Kind: ChoiceMove, Move: move}, nil
	}

	if set.Contains(input) {
		return Choice{Kind: ChoiceMove, Move: input}, nil
	}
	return Choice{}, fmt.Errorf("%w: %q is not a move", ErrInvalidChoice, input)
}
