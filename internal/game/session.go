package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/rockpaper/internal/commit"
	"github.com/lox/rockpaper/internal/moves"
)

// Session plays consecutive rounds over a fixed MoveSet.
type Session struct {
	id     string
	moves  moves.MoveSet
	table  *moves.OutcomeTable
	engine *commit.Engine
	clock  quartz.Clock
	logger *log.Logger

	rounds int
	live   *Round
	score  Scoreboard
}

type sessionOptions struct {
	clock      quartz.Clock
	logger     *log.Logger
	engineOpts []commit.Option
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithClock sets the clock used to time rounds.
func WithClock(clock quartz.Clock) Option {
	return func(o *sessionOptions) {
		o.clock = clock
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// WithEngineOptions passes options through to the commitment engine.
func WithEngineOptions(opts ...commit.Option) Option {
	return func(o *sessionOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewSession builds the outcome table and commitment engine for set.
func NewSession(set moves.MoveSet, opts ...Option) (*Session, error) {
	o := sessionOptions{
		clock:  quartz.NewReal(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	table, err := moves.Build(set)
	if err != nil {
		return nil, err
	}

	engineOpts := append([]commit.Option{commit.WithLogger(o.logger)}, o.engineOpts...)
	engine, err := commit.NewEngine(set.Len(), engineOpts...)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := o.logger.WithPrefix("game").With("session", id)
	logger.Info("Session started", "moves", set.Names(), "key_bits", engine.KeyBits())

	return &Session{
		id:     id,
		moves:  set,
		table:  table,
		engine: engine,
		clock:  o.clock,
		logger: logger,
	}, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Moves returns the session's MoveSet.
func (s *Session) Moves() moves.MoveSet {
	return s.moves
}

// Table returns the outcome table.
func (s *Session) Table() *moves.OutcomeTable {
	return s.table
}

// Score returns the running tally for this process.
func (s *Session) Score() Scoreboard {
	return s.score
}

// NewRound starts a round in the Idle state. Only one round may be live at
// a time; the previous round must have been played first.
func (s *Session) NewRound() (*Round, error) {
	if s.live != nil {
		return nil, &commit.CommitmentStateError{Op: "start a new round over", State: s.live.State()}
	}

	s.rounds++
	r := &Round{
		id:      uuid.NewString(),
		number:  s.rounds,
		session: s,
	}
	s.live = r
	s.logger.Debug("Round created", "round", r.number, "round_id", r.id)
	return r, nil
}

// StartRound creates a round and commits to the computer's move in one step.
func (s *Session) StartRound() (*Round, error) {
	r, err := s.NewRound()
	if err != nil {
		return nil, err
	}
	if _, err := r.Commit(); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Session) finish(r *Round, res Result) {
	if s.live == r {
		s.live = nil
	}
	s.score.Record(res.Outcome)
	s.logger.Info("Round finished",
		"round", r.number,
		"player", res.PlayerMove,
		"computer", res.ComputerMove,
		"outcome", res.Outcome,
		"elapsed", res.Elapsed,
	)
}
