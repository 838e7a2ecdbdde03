package moves

// Outcome is the result of a move from the actor's point of view.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Draw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the outcome seen from the other side.
func (o Outcome) Opposite() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return o
	}
}
