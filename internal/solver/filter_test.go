package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmizener/nyt/internal/words"
)

func newSet(ws ...string) words.Set {
	set := make(words.Set, len(ws))
	for _, w := range ws {
		set.Add(w)
	}
	return set
}

// scoreAgainst produces the verdicts an honest game reports for guess when
// the hidden word is target. Hits first, then presents resolved left to
// right against the remaining letter counts.
func scoreAgainst(target, guess string) []Verdict {
	n := len(guess)
	vs := make([]Verdict, n)
	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			vs[i] = Correct
		} else {
			counts[target[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if vs[i] == Correct {
			continue
		}
		j := int(guess[i] - 'a')
		if counts[j] > 0 {
			vs[i] = Present
			counts[j]--
		} else {
			vs[i] = Absent
		}
	}
	return vs
}

func TestApply_CorrectAndExcluded(t *testing.T) {
	set := newSet("crane", "climb", "coast", "pluck", "slate")

	c, err := Encode("crane", mustVerdicts(t, "g...."))
	require.NoError(t, err)

	got := Apply(set, c)
	assert.Equal(t, []string{"climb"}, got.Sorted())
}

func TestApply_PresentBansPosition(t *testing.T) {
	set := newSet("abbbb", "babbb", "bbbba")

	// a is in the word but not at position 0; z is nowhere.
	c, err := Encode("azzzz", mustVerdicts(t, "y...."))
	require.NoError(t, err)

	got := Apply(set, c)
	assert.Equal(t, []string{"babbb", "bbbba"}, got.Sorted())
}

func TestApply_MinCountDuplicates(t *testing.T) {
	set := newSet("bbaab", "ababa", "babaa")

	// Two a's present, neither at its guessed position.
	c, err := Encode("aazzz", mustVerdicts(t, "yy..."))
	require.NoError(t, err)

	got := Apply(set, c)
	assert.Equal(t, []string{"bbaab"}, got.Sorted())
}

func TestApply_PositionLockOnly(t *testing.T) {
	set := newSet("coast", "brine", "climb")

	// A bare lock constrains one position and nothing else.
	c := Constraints{locks: map[int]byte{0: 'c'}}

	got := Apply(set, c)
	assert.Equal(t, []string{"climb", "coast"}, got.Sorted())
}

func TestApply_InputNotMutated(t *testing.T) {
	set := newSet("crane", "slate")
	c, err := Encode("crane", mustVerdicts(t, "ggggg"))
	require.NoError(t, err)

	got := Apply(set, c)
	assert.Equal(t, []string{"crane"}, got.Sorted())
	assert.Equal(t, []string{"crane", "slate"}, set.Sorted())
}

func TestApply_Idempotent(t *testing.T) {
	set := newSet("crane", "climb", "coast", "pluck", "slate", "cacao")
	c, err := Encode("crane", mustVerdicts(t, "g.y.."))
	require.NoError(t, err)

	once := Apply(set, c)
	require.Equal(t, []string{"cacao"}, once.Sorted())
	twice := Apply(once, c)
	assert.Equal(t, once.Sorted(), twice.Sorted())
}

func TestApply_NeverGrows(t *testing.T) {
	set := newSet("crane", "climb", "coast", "pluck", "slate")

	for _, verdict := range []string{".....", "g....", "yyyyy", "ggggg", "gygyg"} {
		c, err := Encode("crane", mustVerdicts(t, verdict))
		require.NoError(t, err)
		got := Apply(set, c)
		assert.LessOrEqual(t, len(got), len(set), "verdict %s", verdict)
		for w := range got {
			assert.True(t, set.Has(w), "verdict %s invented %q", verdict, w)
		}
	}
}

func TestApply_CanEmpty(t *testing.T) {
	set := newSet("crane")

	// Feedback contradicting every candidate leaves a valid empty set.
	c, err := Encode("crane", mustVerdicts(t, "....."))
	require.NoError(t, err)

	got := Apply(set, c)
	assert.Empty(t, got)
}

// TestApply_HonestTargetSurvives checks the core soundness property: when
// the verdicts are generated truthfully against a hidden target, filtering
// never removes that target, for every guess/target pair in the list.
func TestApply_HonestTargetSurvives(t *testing.T) {
	list := []string{
		"crane", "slate", "sassy", "llama", "abbey",
		"coast", "climb", "pluck", "eerie", "truss",
	}
	set := newSet(list...)

	for _, target := range list {
		for _, guess := range list {
			c, err := Encode(guess, scoreAgainst(target, guess))
			require.NoError(t, err)
			got := Apply(set, c)
			assert.True(t, got.Has(target),
				"target %q eliminated by honest feedback for guess %q", target, guess)
		}
	}
}
