// internal/words/words.go
//
// Word list loading and the candidate set container.
//
// Responsibilities:
//   - Parse line-oriented word lists permissively: keep entries of exactly
//     the requested length composed of lowercase a–z, silently drop
//     everything else (source lists may contain noise).
//   - Provide Set, the working candidate container used by the filter.
//   - Serve the embedded default list for out-of-the-box runs.
//
// Constraints:
//   • Members are never normalized: a mixed-case or punctuated line is
//     dropped, not repaired.
//   • Sets have unique membership and no meaningful order; Sorted() is for
//     presentation and tests.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/vmizener/nyt/assets"
)

// Set is the working candidate set: unique membership, no meaningful order.
type Set map[string]struct{}

// Add inserts w into the set.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Has reports membership.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Load reads a line-oriented word list from r, keeping only words of exactly
// length characters composed of lowercase a–z.
func Load(r io.Reader, length int) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if len(w) == length && isAlpha(w) {
			set.Add(w)
		}
	}
	return set, sc.Err()
}

// LoadAll reads a word list keeping every lowercase a–z word regardless of
// length. Mixed-length dictionaries feed the spelling bee solver.
func LoadAll(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if len(w) > 0 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, length int) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	set, err := Load(f, length)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}

// Default returns the embedded default list filtered to length. Only a
// five-letter list ships embedded, so other lengths come back empty.
func Default(length int) (Set, error) {
	lines, err := assets.WordList()
	if err != nil {
		return nil, err
	}
	set := make(Set)
	for _, w := range lines {
		if len(w) == length && isAlpha(w) {
			set.Add(w)
		}
	}
	return set, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
