// internal/bee/bee.go
//
// Spelling bee word filter: given a set of legal letters whose first letter
// is mandatory, keep the dictionary words spelled entirely from those
// letters that contain the mandatory one. A word using every puzzle letter
// at least once is a pangram.

package bee

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultMinLen is the shortest word the puzzle accepts.
const DefaultMinLen = 4

// Puzzle is a parsed letter set. The required letter must appear in every
// accepted word.
type Puzzle struct {
	allowed  [26]bool
	letters  []byte // distinct puzzle letters, input order
	required byte
}

// Match is one accepted word.
type Match struct {
	Word    string
	Pangram bool
}

// Parse builds a Puzzle from a letter string, e.g. "tlayrci". Letters must
// be lowercase a–z; the first one is the required letter. Duplicates are
// tolerated and ignored.
func Parse(s string) (Puzzle, error) {
	if s == "" {
		return Puzzle{}, errors.New("no puzzle letters")
	}
	var p Puzzle
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'a' || ch > 'z' {
			return Puzzle{}, fmt.Errorf("puzzle letter %q: lowercase a-z only", ch)
		}
		if !p.allowed[ch-'a'] {
			p.allowed[ch-'a'] = true
			p.letters = append(p.letters, ch)
		}
	}
	p.required = s[0]
	return p, nil
}

// Letters returns the distinct puzzle letters in input order.
func (p Puzzle) Letters() string { return string(p.letters) }

// Required returns the mandatory letter.
func (p Puzzle) Required() byte { return p.required }

// Match reports whether word is spelled entirely from the puzzle letters
// and contains the required one. Length is the caller's concern.
func (p Puzzle) Match(word string) bool {
	sawRequired := false
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' || !p.allowed[ch-'a'] {
			return false
		}
		if ch == p.required {
			sawRequired = true
		}
	}
	return sawRequired && len(word) > 0
}

// pangram reports whether word uses every puzzle letter at least once.
func (p Puzzle) pangram(word string) bool {
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		seen[word[i]-'a'] = true
	}
	for _, ch := range p.letters {
		if !seen[ch-'a'] {
			return false
		}
	}
	return true
}

// Solve filters dict down to the accepted words of at least minLen letters.
// Results are sorted pangrams first, then alphabetically, so output is
// deterministic regardless of dictionary order.
func Solve(p Puzzle, minLen int, dict []string) []Match {
	if minLen <= 0 {
		minLen = DefaultMinLen
	}
	var out []Match
	seen := make(map[string]struct{}, len(dict))
	for _, w := range dict {
		if len(w) < minLen {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		if !p.Match(w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, Match{Word: w, Pangram: p.pangram(w)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pangram != out[j].Pangram {
			return out[i].Pangram
		}
		return out[i].Word < out[j].Word
	})
	return out
}
