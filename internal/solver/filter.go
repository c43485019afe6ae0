// internal/solver/filter.go
//
// Candidate filtering for the elimination engine.
// Applies one guess's Constraints to the working candidate set in a single
// pass, keeping exactly the words still consistent with the feedback.

package solver

import "github.com/vmizener/nyt/internal/words"

// Apply returns the subset of candidates consistent with c. The input set is
// not mutated; callers replace their working set with the result. An empty
// result is valid and means no word satisfies all feedback so far.
func Apply(candidates words.Set, c Constraints) words.Set {
	out := make(words.Set, len(candidates))
	for w := range candidates {
		if c.permits(w) {
			out.Add(w)
		}
	}
	return out
}

// permits reports whether w survives every constraint.
// Checks run cheapest-first; all are independently required.
// Assumes w is lowercase a–z of the session length (store invariant), so
// lock/ban positions are always in range.
func (c Constraints) permits(w string) bool {
	// Excluded letters anywhere in the word.
	for i := 0; i < len(w); i++ {
		if c.excluded[w[i]-'a'] {
			return false
		}
	}
	// Present letters banned at their observed position.
	for i, ch := range c.bans {
		if w[i] == ch {
			return false
		}
	}
	// Correct letters required at their position.
	for i, ch := range c.locks {
		if w[i] != ch {
			return false
		}
	}
	// Minimum occurrence counts (lower bounds, duplicates included).
	var counts [26]int
	for i := 0; i < len(w); i++ {
		counts[w[i]-'a']++
	}
	for j := 0; j < 26; j++ {
		if c.minCount[j] > counts[j] {
			return false
		}
	}
	return true
}
