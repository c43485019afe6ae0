package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustVerdicts parses a verdict line for a 5-letter guess.
func mustVerdicts(t *testing.T, line string) []Verdict {
	t.Helper()
	vs, err := ParseVerdicts(line, len(line))
	require.NoError(t, err)
	return vs
}

func TestEncode_AllAbsent_Excludes(t *testing.T) {
	assert := assert.New(t)

	c, err := Encode("crane", mustVerdicts(t, "....."))
	require.NoError(t, err)

	for _, ch := range []byte("crane") {
		assert.True(c.excluded[ch-'a'], "letter %q should be excluded", ch)
	}
	assert.Empty(c.locks)
	assert.Empty(c.bans)
	for j := 0; j < 26; j++ {
		assert.Zero(c.minCount[j])
	}
}

func TestEncode_DuplicateLetter_CountBoundNotExcluded(t *testing.T) {
	assert := assert.New(t)

	// First s is a hit; the other two s's come back absent. The letter is
	// count-bounded at one occurrence, never excluded.
	c, err := Encode("sassy", mustVerdicts(t, "g...."))
	require.NoError(t, err)

	s := int('s' - 'a')
	assert.False(c.excluded[s])
	assert.Equal(1, c.minCount[s])
	assert.Equal(map[int]byte{0: 's'}, c.locks)
	assert.Empty(c.bans)

	assert.True(c.excluded['a'-'a'])
	assert.True(c.excluded['y'-'a'])
}

func TestEncode_LocksAndBans(t *testing.T) {
	assert := assert.New(t)

	// a hit at 0, first b present at 1, second b absent at 2.
	c, err := Encode("abbey", mustVerdicts(t, "gy..."))
	require.NoError(t, err)

	assert.Equal(map[int]byte{0: 'a'}, c.locks)
	assert.Equal(map[int]byte{1: 'b'}, c.bans)

	b := int('b' - 'a')
	assert.False(c.excluded[b], "tallied letter must not be excluded")
	assert.Equal(1, c.minCount[b])
	assert.Equal(1, c.minCount['a'-'a'])

	assert.True(c.excluded['e'-'a'])
	assert.True(c.excluded['y'-'a'])
}

func TestEncode_RepeatedPresent_CountsAccumulate(t *testing.T) {
	assert := assert.New(t)

	c, err := Encode("llama", mustVerdicts(t, "yy..."))
	require.NoError(t, err)

	assert.Equal(2, c.minCount['l'-'a'])
	assert.Equal(map[int]byte{0: 'l', 1: 'l'}, c.bans)
	assert.True(c.excluded['a'-'a'])
	assert.True(c.excluded['m'-'a'])
}

func TestEncode_TalliedNeverExcluded(t *testing.T) {
	cases := []struct{ guess, verdict string }{
		{"crane", "ggggg"},
		{"sassy", "g.y.."},
		{"llama", "y.g.y"},
		{"abbey", "gyg.y"},
	}
	for _, tc := range cases {
		c, err := Encode(tc.guess, mustVerdicts(t, tc.verdict))
		require.NoError(t, err)
		for j := 0; j < 26; j++ {
			if c.minCount[j] > 0 {
				assert.False(t, c.excluded[j],
					"%s/%s: letter %c both excluded and count-bounded", tc.guess, tc.verdict, 'a'+j)
			}
		}
		for _, ch := range c.locks {
			assert.False(t, c.excluded[ch-'a'])
		}
		for _, ch := range c.bans {
			assert.False(t, c.excluded[ch-'a'])
		}
	}
}

func TestEncode_LengthMismatch_Fails(t *testing.T) {
	_, err := Encode("crane", []Verdict{Correct})
	assert.True(t, errors.Is(err, ErrLength))
}

func TestEncode_BadGuessChar_Fails(t *testing.T) {
	_, err := Encode("cran!", mustVerdicts(t, "....."))
	assert.True(t, errors.Is(err, ErrChar))
}
