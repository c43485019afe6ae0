// internal/words/store.go
//
// Source-remembering word store. A Store knows where its words come from so
// a session reset can reload the list fresh from the same source.

package words

import (
	"context"
	"fmt"
)

// Lister yields the words of one length from a backing dictionary.
// Implemented by the lexicon database; length <= 0 means all lengths.
type Lister interface {
	Words(ctx context.Context, length int) ([]string, error)
}

// Store loads the candidate word set from a fixed source.
type Store struct {
	length int
	path   string
	lister Lister
	name   string
}

// FileStore serves words of the given length from a line-oriented file.
func FileStore(path string, length int) *Store {
	return &Store{length: length, path: path, name: "file:" + path}
}

// LexiconStore serves words of the given length from a dictionary backend.
func LexiconStore(l Lister, name string, length int) *Store {
	return &Store{length: length, lister: l, name: "lexicon:" + name}
}

// EmbeddedStore serves the embedded default list.
func EmbeddedStore(length int) *Store {
	return &Store{length: length, name: "embedded"}
}

// Load reads the source fresh and returns the candidate set.
func (s *Store) Load(ctx context.Context) (Set, error) {
	switch {
	case s.path != "":
		return LoadFile(s.path, s.length)
	case s.lister != nil:
		list, err := s.lister.Words(ctx, s.length)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", s.name, err)
		}
		set := make(Set, len(list))
		for _, w := range list {
			set.Add(w)
		}
		return set, nil
	default:
		return Default(s.length)
	}
}

// Length returns the word length this store serves.
func (s *Store) Length() int { return s.length }

// Describe identifies the source for logs.
func (s *Store) Describe() string { return s.name }
