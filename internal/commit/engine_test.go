package commit

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestEngine(t *testing.T, n int, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	e, err := NewEngine(n, opts...)
	require.NoError(t, err)
	return e
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read error") }

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", n: 3},
		{name: "256 bit key", n: 5, opts: []Option{WithKeyBits(256)}},
		{name: "zero moves", n: 0, wantErr: true},
		{name: "short key", n: 3, opts: []Option{WithKeyBits(64)}, wantErr: true},
		{name: "unaligned key", n: 3, opts: []Option{WithKeyBits(130)}, wantErr: true},
		{name: "nil entropy", n: 3, opts: []Option{WithEntropy(nil)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithLogger(quietLogger())}, tt.opts...)
			e, err := NewEngine(tt.n, opts...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, e.KeyBits(), MinKeyBits)
		})
	}
}

func TestCommitRevealRoundTrip(t *testing.T) {
	e := newTestEngine(t, 7)

	for i := 0; i < 50; i++ {
		c, err := e.Commit()
		require.NoError(t, err)
		assert.Equal(t, Committed, c.State())
		assert.Len(t, c.Digest(), 64)
		assert.Equal(t, c.Digest(), hex.EncodeToString(mustDecode(t, c.Digest())), "digest must be lowercase hex")

		r, err := e.Reveal(c)
		require.NoError(t, err)
		assert.Equal(t, Revealed, c.State())
		assert.Len(t, r.KeyHex, 32)
		assert.GreaterOrEqual(t, r.MoveIndex, 0)
		assert.Less(t, r.MoveIndex, 7)
		assert.Equal(t, c.Digest(), r.Digest)

		ok, err := Verify(c.Digest(), r.KeyHex, r.MoveIndex)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCommitIsDeterministicForEntropy(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 16)
	stream := append(append([]byte{}, key...), 0x02)
	e := newTestEngine(t, 3, WithEntropy(bytes.NewReader(stream)))

	c, err := e.Commit()
	require.NoError(t, err)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(strconv.Itoa(2)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), c.Digest())

	r, err := e.Reveal(c)
	require.NoError(t, err)
	assert.Equal(t, 2, r.MoveIndex)
	assert.Equal(t, hex.EncodeToString(key), r.KeyHex)
}

func TestCommitRejectsOutOfRangeSamples(t *testing.T) {
	// With three moves one byte is drawn and masked to two bits; 3 is
	// rejected and the next byte is used.
	stream := append(bytes.Repeat([]byte{0x01}, 16), 0x03, 0x01)
	e := newTestEngine(t, 3, WithEntropy(bytes.NewReader(stream)))

	c, err := e.Commit()
	require.NoError(t, err)
	r, err := e.Reveal(c)
	require.NoError(t, err)
	assert.Equal(t, 1, r.MoveIndex)
}

func TestCheatingIsDetected(t *testing.T) {
	e := newTestEngine(t, 5)
	c, err := e.Commit()
	require.NoError(t, err)
	r, err := e.Reveal(c)
	require.NoError(t, err)

	t.Run("different index", func(t *testing.T) {
		ok, err := Verify(r.Digest, r.KeyHex, (r.MoveIndex+1)%5)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("different key", func(t *testing.T) {
		key := mustDecode(t, r.KeyHex)
		key[0] ^= 0x01
		ok, err := Verify(r.Digest, hex.EncodeToString(key), r.MoveIndex)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := Verify(r.Digest, "zz", r.MoveIndex)
		assert.Error(t, err)
	})

	t.Run("malformed digest", func(t *testing.T) {
		_, err := Verify("not-hex", r.KeyHex, r.MoveIndex)
		assert.Error(t, err)
	})
}

func TestRevealOnlyOnce(t *testing.T) {
	e := newTestEngine(t, 3)
	c, err := e.Commit()
	require.NoError(t, err)

	_, err = e.Reveal(c)
	require.NoError(t, err)

	_, err = e.Reveal(c)
	var stateErr *CommitmentStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, Revealed, stateErr.State)

	_, err = c.MoveIndex()
	assert.True(t, errors.As(err, &stateErr))
}

func TestRevealWithoutCommit(t *testing.T) {
	e := newTestEngine(t, 3)

	var stateErr *CommitmentStateError
	_, err := e.Reveal(nil)
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, Idle, stateErr.State)

	_, err = e.Reveal(&Commitment{})
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, Idle, stateErr.State)
	assert.Contains(t, err.Error(), "IDLE")
}

func TestEntropyFailure(t *testing.T) {
	tests := []struct {
		name   string
		source io.Reader
	}{
		{name: "no entropy at all", source: errReader{}},
		{name: "entropy ends after key", source: bytes.NewReader(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 3, WithEntropy(tt.source))
			c, err := e.Commit()
			assert.Nil(t, c)
			var entropyErr *EntropyUnavailableError
			require.True(t, errors.As(err, &entropyErr))
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestMoveIndexDistribution(t *testing.T) {
	const (
		n      = 5
		rounds = 20000
	)
	e := newTestEngine(t, n)
	counts := make([]int, n)

	for i := 0; i < rounds; i++ {
		c, err := e.Commit()
		require.NoError(t, err)
		idx, err := c.MoveIndex()
		require.NoError(t, err)
		counts[idx]++
	}

	// Chi-squared with 4 degrees of freedom; 25 is past the 0.9999 quantile.
	expected := float64(rounds) / n
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 25.0, "counts %v", counts)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "IDLE", Idle.String())
	assert.Equal(t, "COMMITTED", Committed.String())
	assert.Equal(t, "REVEALED", Revealed.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
