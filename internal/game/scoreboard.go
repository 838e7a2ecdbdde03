package game

import (
	"fmt"

	"github.com/lox/rockpaper/internal/moves"
)

// Scoreboard tallies outcomes from the player's side.
type Scoreboard struct {
	Wins   int
	Losses int
	Draws  int
}

// Record adds one outcome.
func (s *Scoreboard) Record(o moves.Outcome) {
	switch o {
	case moves.Win:
		s.Wins++
	case moves.Lose:
		s.Losses++
	case moves.Draw:
		s.Draws++
	}
}

// Rounds returns the number of recorded rounds.
func (s Scoreboard) Rounds() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Scoreboard) String() string {
	return fmt.Sprintf("%d rounds: %d won, %d lost, %d drawn", s.Rounds(), s.Wins, s.Losses, s.Draws)
}
