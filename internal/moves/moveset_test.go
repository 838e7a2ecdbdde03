package moves

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoveSet(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{name: "three moves", input: []string{"rock", "paper", "scissors"}},
		{name: "five moves", input: []string{"a", "b", "c", "d", "e"}},
		{name: "empty", input: nil, wantErr: true},
		{name: "one move", input: []string{"rock"}, wantErr: true},
		{name: "even count", input: []string{"a", "b", "c", "d"}, wantErr: true},
		{name: "duplicate", input: []string{"rock", "paper", "rock"}, wantErr: true},
		{name: "blank name", input: []string{"rock", " ", "paper"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewMoveSet(tt.input)
			if tt.wantErr {
				var invalid *InvalidMoveSetError
				require.True(t, errors.As(err, &invalid), "expected InvalidMoveSetError, got %v", err)
				assert.True(t, set.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, set.Names())
			assert.Equal(t, len(tt.input), set.Len())
		})
	}
}

func TestMoveSetIsImmutable(t *testing.T) {
	input := []string{"rock", "paper", "scissors"}
	set, err := NewMoveSet(input)
	require.NoError(t, err)

	input[0] = "boulder"
	names := set.Names()
	names[1] = "cloth"

	assert.Equal(t, []string{"rock", "paper", "scissors"}, set.Names())
}

func TestMoveSetLookup(t *testing.T) {
	set, err := NewMoveSet([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)

	assert.Equal(t, 1, set.Half())
	assert.Equal(t, 2, set.Index("scissors"))
	assert.Equal(t, -1, set.Index("lizard"))
	assert.True(t, set.Contains("paper"))
	assert.False(t, set.Contains("Paper"))

	name, err := set.At(1)
	require.NoError(t, err)
	assert.Equal(t, "paper", name)

	_, err = set.At(3)
	assert.Error(t, err)
	_, err = set.At(-1)
	assert.Error(t, err)
}

func TestInvalidMoveSetErrorMessage(t *testing.T) {
	_, err := NewMoveSet([]string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 3 moves")
	assert.Contains(t, err.Error(), "[a, b]")
}
