// internal/solver/verdict.go
//
// Verdict symbols and input validation for the elimination engine.
// Defines:
//   - Verdict: per-letter feedback for one guess position (g/y/.).
//   - ParseVerdicts: verdict line → []Verdict with validation.
//   - CheckGuess: guess line validation (length, lowercase a–z).

package solver

import (
	"errors"
	"fmt"
)

// Verdict is the feedback for a single letter of a guess.
// The constants double as the wire symbols accepted on input.
type Verdict byte

const (
	// Correct: the letter is in the word at exactly this position.
	Correct Verdict = 'g'
	// Present: the letter is in the word but not at this position.
	Present Verdict = 'y'
	// Absent: the letter does not appear in the word beyond any
	// occurrences already credited at other positions of the same guess.
	Absent Verdict = '.'
)

// Validation sentinels. Callers branch with errors.Is; wrapped messages
// carry the specifics.
var (
	// ErrLength reports a guess or verdict line of the wrong length.
	ErrLength = errors.New("invalid length")
	// ErrChar reports a character outside the accepted alphabet
	// (a–z for guesses, g/y/. for verdicts).
	ErrChar = errors.New("invalid character")
)

// ParseVerdicts converts a verdict line into a positional Verdict slice.
// The line must be exactly length characters drawn from {g, y, .}.
func ParseVerdicts(line string, length int) ([]Verdict, error) {
	if len(line) != length {
		return nil, fmt.Errorf("%w: verdict must be %d characters, got %d", ErrLength, length, len(line))
	}
	vs := make([]Verdict, length)
	for i := 0; i < length; i++ {
		switch c := line[i]; c {
		case 'g', 'y', '.':
			vs[i] = Verdict(c)
		default:
			return nil, fmt.Errorf("%w: verdict symbol %q at position %d", ErrChar, c, i)
		}
	}
	return vs, nil
}

// CheckGuess validates a guess line: exactly length lowercase a–z letters.
func CheckGuess(word string, length int) error {
	if len(word) != length {
		return fmt.Errorf("%w: guess must be %d characters, got %d", ErrLength, length, len(word))
	}
	if !isAlpha(word) {
		return fmt.Errorf("%w: guess must be lowercase a-z", ErrChar)
	}
	return nil
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
