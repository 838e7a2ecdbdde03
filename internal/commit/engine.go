// Package commit implements the commit-reveal protocol the computer uses to
// bind itself to a move before the player chooses theirs.
//
// The computer draws a secret key and a move index, publishes
// HMAC-SHA256(key, decimal(index)) and keeps both private until the player
// has moved. Revealing the key and index afterwards lets anyone recompute the
// digest with Verify.
package commit

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/charmbracelet/log"
)

// MinKeyBits is the smallest accepted secret key size.
const MinKeyBits = 128

// State is the lifecycle position of a Commitment.
type State int

const (
	Idle State = iota
	Committed
	Revealed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Committed:
		return "COMMITTED"
	case Revealed:
		return "REVEALED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Commitment holds one round's secret key and move index until it is revealed.
type Commitment struct {
	key    []byte
	index  int
	digest string
	state  State
}

// Digest returns the published HMAC digest as lowercase hex.
func (c *Commitment) Digest() string {
	if c == nil {
		return ""
	}
	return c.digest
}

// State returns the commitment's lifecycle state.
func (c *Commitment) State() State {
	if c == nil {
		return Idle
	}
	return c.state
}

// Reveal is what the computer discloses once the player has moved.
type Reveal struct {
	KeyHex    string
	MoveIndex int
	Digest    string
}

// Option configures an Engine.
type Option func(*Engine)

// WithKeyBits sets the secret key size in bits.
func WithKeyBits(bits int) Option {
	return func(e *Engine) {
		e.keyBits = bits
	}
}

// WithEntropy replaces crypto/rand.Reader as the random source.
func WithEntropy(r io.Reader) Option {
	return func(e *Engine) {
		e.entropy = r
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine creates commitments for a game with a fixed number of moves.
type Engine struct {
	moveCount int
	keyBits   int
	entropy   io.Reader
	logger    *log.Logger
}

// NewEngine returns an engine choosing among moveCount moves.
func NewEngine(moveCount int, opts ...Option) (*Engine, error) {
	e := &Engine{
		moveCount: moveCount,
		keyBits:   MinKeyBits,
		entropy:   rand.Reader,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.moveCount < 1 {
		return nil, fmt.Errorf("move count must be positive, got %d", e.moveCount)
	}
	if e.keyBits < MinKeyBits || e.keyBits%8 != 0 {
		return nil, fmt.Errorf("key size must be a multiple of 8 bits and at least %d, got %d", MinKeyBits, e.keyBits)
	}
	if e.entropy == nil {
		return nil, errors.New("entropy source is required")
	}
	e.logger = e.logger.WithPrefix("commit")
	return e, nil
}

// KeyBits returns the secret key size in bits.
func (e *Engine) KeyBits() int {
	return e.keyBits
}

// Commit draws a fresh key and move index and computes the digest.
func (e *Engine) Commit() (*Commitment, error) {
	key := make([]byte, e.keyBits/8)
	if _, err := io.ReadFull(e.entropy, key); err != nil {
		return nil, &EntropyUnavailableError{Err: fmt.Errorf("generate key: %w", err)}
	}

	n, err := rand.Int(e.entropy, big.NewInt(int64(e.moveCount)))
	if err != nil {
		return nil, &EntropyUnavailableError{Err: fmt.Errorf("choose move: %w", err)}
	}
	index := int(n.Int64())

	c := &Commitment{
		key:    key,
		index:  index,
		digest: Digest(key, index),
		state:  Committed,
	}
	e.logger.Debug("Committed to move", "digest", c.digest)
	return c, nil
}

// Reveal discloses the key and index behind c. Each commitment can be
// revealed once.
func (e *Engine) Reveal(c *Commitment) (Reveal, error) {
	if c == nil || c.state != Committed {
		return Reveal{}, &CommitmentStateError{Op: "reveal", State: c.State()}
	}
	c.state = Revealed

	r := Reveal{
		KeyHex:    hex.EncodeToString(c.key),
		MoveIndex: c.index,
		Digest:    c.digest,
	}
	e.logger.Debug("Revealed commitment", "digest", r.Digest, "index", r.MoveIndex)
	return r, nil
}

// MoveIndex returns the committed index without revealing the key. The
// caller uses it to resolve the round before Reveal is called.
func (c *Commitment) MoveIndex() (int, error) {
	if c == nil || c.state != Committed {
		return 0, &CommitmentStateError{Op: "read", State: c.State()}
	}
	return c.index, nil
}

// Digest returns hex(HMAC-SHA256(key, decimal(index))).
func Digest(key []byte, index int) string {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(strconv.Itoa(index)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the digest for a revealed key and index and compares it
// with the published one.
func Verify(digestHex, keyHex string, index int) (bool, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("decode key: %w", err)
	}
	published, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("decode digest: %w", err)
	}
	expected, _ := hex.DecodeString(Digest(key, index))
	return hmac.Equal(expected, published), nil
}
