package game

import (
	"time"

	"github.com/lox/rockpaper/internal/commit"
	"github.com/lox/rockpaper/internal/moves"
)

// Result describes a finished round and the proof needed to check it.
type Result struct {
	RoundID      string
	Round        int
	PlayerMove   string
	ComputerMove string
	// Outcome is the player's result against the computer.
	Outcome   moves.Outcome
	Digest    string
	KeyHex    string
	MoveIndex int
	Elapsed   time.Duration
}

// Round is one commit, play, reveal cycle.
type Round struct {
	id      string
	number  int
	session *Session

	commitment *commit.Commitment
	startedAt  time.Time
}

// ID returns the round identifier.
func (r *Round) ID() string {
	return r.id
}

// Number returns the 1-based round number within the session.
func (r *Round) Number() int {
	return r.number
}

// State returns the round's position in the commit-reveal cycle.
func (r *Round) State() commit.State {
	return r.commitment.State()
}

// Digest returns the published digest, or "" before Commit.
func (r *Round) Digest() string {
	return r.commitment.Digest()
}

// Commit chooses the computer's move and returns the digest to publish
// before the player is asked for theirs.
func (r *Round) Commit() (string, error) {
	if r.commitment != nil {
		return "", &commit.CommitmentStateError{Op: "commit", State: r.State()}
	}

	c, err := r.session.engine.Commit()
	if err != nil {
		return "", err
	}
	r.commitment = c
	r.startedAt = r.session.clock.Now()
	return c.Digest(), nil
}

// Play resolves the player's move against the committed computer move and
// reveals the secret key.
func (r *Round) Play(playerMove string) (Result, error) {
	s := r.session

	index, err := r.commitment.MoveIndex()
	if err != nil {
		return Result{}, &commit.CommitmentStateError{Op: "play", State: r.State()}
	}
	computerMove, err := s.moves.At(index)
	if err != nil {
		return Result{}, err
	}

	outcome, err := s.table.Resolve(playerMove, computerMove)
	if err != nil {
		return Result{}, err
	}

	reveal, err := s.engine.Reveal(r.commitment)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RoundID:      r.id,
		Round:        r.number,
		PlayerMove:   playerMove,
		ComputerMove: computerMove,
		Outcome:      outcome,
		Digest:       reveal.Digest,
		KeyHex:       reveal.KeyHex,
		MoveIndex:    reveal.MoveIndex,
		Elapsed:      s.clock.Since(r.startedAt),
	}
	s.finish(r, res)
	return res, nil
}
