package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmizener/nyt/internal/session"
	"github.com/vmizener/nyt/internal/solver"
	"github.com/vmizener/nyt/internal/words"
)

// newController builds a controller over a throwaway word list file.
func newController(t *testing.T, list ...string) *session.Controller {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644))
	ctrl, err := session.New(context.Background(), words.FileStore(path, 5), session.Config{WordLen: 5})
	require.NoError(t, err)
	return ctrl
}

func TestController_GuessVerdictCycle(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "climb", "coast", "pluck", "slate")

	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Equal(5, ctrl.Remaining())

	require.NoError(t, ctrl.SubmitGuess("crane"))
	assert.Equal(session.StateAwaitingVerdict, ctrl.State())
	assert.Equal("crane", ctrl.Pending())

	require.NoError(t, ctrl.SubmitVerdict("g...."))
	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Empty(ctrl.Pending())
	assert.Equal(1, ctrl.Guesses())
	assert.Equal([]string{"climb"}, ctrl.Candidates())
}

func TestController_InvalidGuess_KeepsState(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "slate")

	assert.True(errors.Is(ctrl.SubmitGuess("cranes"), solver.ErrLength))
	assert.True(errors.Is(ctrl.SubmitGuess("cr4ne"), solver.ErrChar))
	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Equal(2, ctrl.Remaining())
}

func TestController_VerdictWithoutGuess_Fails(t *testing.T) {
	ctrl := newController(t, "crane", "slate")
	assert.True(t, errors.Is(ctrl.SubmitVerdict("ggggg"), session.ErrState))
}

func TestController_GuessWhilePending_Fails(t *testing.T) {
	ctrl := newController(t, "crane", "slate")
	require.NoError(t, ctrl.SubmitGuess("crane"))
	assert.True(t, errors.Is(ctrl.SubmitGuess("slate"), session.ErrState))
	assert.Equal(t, "crane", ctrl.Pending())
}

func TestController_InvalidVerdict_KeepsPending(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "slate")

	require.NoError(t, ctrl.SubmitGuess("crane"))
	assert.True(errors.Is(ctrl.SubmitVerdict("xxxxx"), solver.ErrChar))
	assert.True(errors.Is(ctrl.SubmitVerdict("gg"), solver.ErrLength))

	assert.Equal(session.StateAwaitingVerdict, ctrl.State())
	assert.Equal("crane", ctrl.Pending())
	assert.Equal(2, ctrl.Remaining())
	assert.Zero(ctrl.Guesses())

	require.NoError(t, ctrl.SubmitVerdict("ggggg"))
	assert.Equal([]string{"crane"}, ctrl.Candidates())
}

func TestController_Apply_OK(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "climb", "coast", "pluck", "slate")

	require.NoError(t, ctrl.Apply("crane", "g...."))
	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Equal(1, ctrl.Guesses())
	assert.Equal([]string{"climb"}, ctrl.Candidates())
}

func TestController_Apply_Atomic(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "climb", "coast")

	// A bad verdict must leave the whole controller untouched.
	assert.True(errors.Is(ctrl.Apply("crane", "xx..."), solver.ErrChar))
	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Equal(3, ctrl.Remaining())
	assert.Zero(ctrl.Guesses())

	assert.True(errors.Is(ctrl.Apply("cranes", "....."), solver.ErrLength))
	assert.Equal(3, ctrl.Remaining())
}

func TestController_Apply_WhilePending_Fails(t *testing.T) {
	ctrl := newController(t, "crane", "slate")
	require.NoError(t, ctrl.SubmitGuess("crane"))
	assert.True(t, errors.Is(ctrl.Apply("slate", "....."), session.ErrState))
}

func TestController_Reset_Restores(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "climb", "coast", "pluck", "slate")

	require.NoError(t, ctrl.Apply("crane", "g...."))
	require.NoError(t, ctrl.SubmitGuess("climb"))
	require.NoError(t, ctrl.Reset(context.Background()))

	assert.Equal(session.StateAwaitingGuess, ctrl.State())
	assert.Empty(ctrl.Pending())
	assert.Zero(ctrl.Guesses())
	assert.Equal(5, ctrl.Remaining())
}

func TestController_Terminate_Absorbing(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane", "slate")

	ctrl.Terminate()
	assert.Equal(session.StateTerminated, ctrl.State())

	assert.True(errors.Is(ctrl.SubmitGuess("crane"), session.ErrTerminated))
	assert.True(errors.Is(ctrl.SubmitVerdict("ggggg"), session.ErrTerminated))
	assert.True(errors.Is(ctrl.Apply("crane", "ggggg"), session.ErrTerminated))
	assert.True(errors.Is(ctrl.Reset(context.Background()), session.ErrTerminated))
	assert.Equal(session.StateTerminated, ctrl.State())
}

func TestController_ZeroRemaining_StillRuns(t *testing.T) {
	assert := assert.New(t)
	ctrl := newController(t, "crane")

	// Contradictory feedback can empty the set; the session keeps going.
	require.NoError(t, ctrl.Apply("crane", "....."))
	assert.Zero(ctrl.Remaining())
	assert.Equal(session.StateAwaitingGuess, ctrl.State())

	require.NoError(t, ctrl.Apply("slate", "....."))
	assert.Zero(ctrl.Remaining())

	require.NoError(t, ctrl.Reset(context.Background()))
	assert.Equal(1, ctrl.Remaining())
}

func TestNew_Defaults(t *testing.T) {
	ctrl := newController(t, "crane")
	cfg := ctrl.Config()
	assert.Equal(t, session.DefaultWordLen, cfg.WordLen)
	assert.Equal(t, session.DefaultMaxGuesses, cfg.MaxGuesses)
}

func TestNew_LengthMismatch_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\n"), 0o644))

	_, err := session.New(context.Background(), words.FileStore(path, 3), session.Config{WordLen: 5})
	assert.Error(t, err)
}

func TestNew_EmptySource_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ntoolong\n"), 0o644))

	_, err := session.New(context.Background(), words.FileStore(path, 5), session.Config{WordLen: 5})
	assert.Error(t, err)
}
