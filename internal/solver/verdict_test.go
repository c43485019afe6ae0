package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdicts_OK(t *testing.T) {
	vs, err := ParseVerdicts("gy..g", 5)
	require.NoError(t, err)
	assert.Equal(t, []Verdict{Correct, Present, Absent, Absent, Correct}, vs)
}

func TestParseVerdicts_WrongLength_Fails(t *testing.T) {
	_, err := ParseVerdicts("gy..", 5)
	assert.True(t, errors.Is(err, ErrLength))
}

func TestParseVerdicts_BadSymbol_Fails(t *testing.T) {
	_, err := ParseVerdicts("gy..x", 5)
	assert.True(t, errors.Is(err, ErrChar))
}

func TestCheckGuess_OK(t *testing.T) {
	assert.NoError(t, CheckGuess("crane", 5))
}

func TestCheckGuess_WrongLength_Fails(t *testing.T) {
	assert.True(t, errors.Is(CheckGuess("cranes", 5), ErrLength))
}

func TestCheckGuess_BadChar_Fails(t *testing.T) {
	assert.True(t, errors.Is(CheckGuess("Crane", 5), ErrChar))
	assert.True(t, errors.Is(CheckGuess("cr4ne", 5), ErrChar))
}
