// internal/solver/constraints.go
//
// Feedback encoding for the elimination engine.
// Responsibilities:
//   - Translate one (guess, verdict) pair into a Constraints value:
//     excluded letters, position locks, position bans, minimum letter counts.
//   - Handle repeated letters correctly: a letter marked Absent at one
//     position while Correct/Present at another is count-bounded, not
//     excluded.
//
// Notes:
//   - Constraints are recomputed fresh per guess and never merged; the
//     cumulative effect comes from successively filtering the candidate set.
//   - Encoding is two-pass and independent of position iteration order.

package solver

import "fmt"

// Constraints is the structured form of one guess's feedback.
//
// Invariant: a letter with a lock, ban, or positive minimum count never
// appears in the excluded set.
type Constraints struct {
	excluded [26]bool    // letters with no occurrence in the word at all
	minCount [26]int     // letter → required minimum occurrences (lower bound)
	locks    map[int]byte // position → required letter (Correct)
	bans     map[int]byte // position → forbidden letter (Present; exists elsewhere)
}

// Encode builds the Constraints for one guess and its aligned verdicts.
// The guess must be lowercase a–z and the two inputs must have equal length.
//
// Pass 1 records locks/bans and tallies required counts for letters seen
// Correct or Present; Absent verdicts are deferred. Pass 2 excludes only
// letters that were marked Absent somewhere and tallied nowhere, so a
// repeated letter keeps its count bound instead of being excluded outright.
func Encode(guess string, verdict []Verdict) (Constraints, error) {
	if len(verdict) != len(guess) {
		return Constraints{}, fmt.Errorf("%w: guess is %d characters, verdict is %d", ErrLength, len(guess), len(verdict))
	}

	c := Constraints{
		locks: make(map[int]byte),
		bans:  make(map[int]byte),
	}
	var tally [26]int
	var sawAbsent [26]bool

	for i := 0; i < len(guess); i++ {
		ch := guess[i]
		if ch < 'a' || ch > 'z' {
			return Constraints{}, fmt.Errorf("%w: guess letter %q at position %d", ErrChar, ch, i)
		}
		j := int(ch - 'a')
		switch verdict[i] {
		case Correct:
			c.locks[i] = ch
			tally[j]++
		case Present:
			c.bans[i] = ch
			tally[j]++
		case Absent:
			sawAbsent[j] = true
		default:
			return Constraints{}, fmt.Errorf("%w: verdict symbol %q at position %d", ErrChar, byte(verdict[i]), i)
		}
	}

	for j := 0; j < 26; j++ {
		switch {
		case tally[j] > 0:
			c.minCount[j] = tally[j]
		case sawAbsent[j]:
			c.excluded[j] = true
		}
	}
	return c, nil
}
