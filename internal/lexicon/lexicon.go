// internal/lexicon/lexicon.go
//
// SQLite-backed dictionary storage.
// Responsibilities:
//   - Open (and create if missing) the lexicon database with safe defaults
//     (WAL journaling, busy timeout, foreign keys).
//   - Import line-oriented word lists permissively: lowercase a–z entries of
//     any length are stored, everything else is skipped, duplicates ignored.
//   - Serve sorted word slices by exact or minimum length, plus per-length
//     counts.
//
// The lexicon is a static word source, like a file that supports queries.
// It holds no session state.

package lexicon

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
    word   TEXT PRIMARY KEY,
    length INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
`

// Lexicon wraps the dictionary database handle.
type Lexicon struct {
	db   *sql.DB
	path string
}

// Open opens the lexicon database at path, creating the file, its parent
// directory, and the schema as needed.
func Open(path string) (*Lexicon, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Lexicon{db: db, path: path}, nil
}

// Close releases the database handle.
func (l *Lexicon) Close() error { return l.db.Close() }

// Path returns the database file location.
func (l *Lexicon) Path() string { return l.path }

// importBatch bounds transaction size during imports.
const importBatch = 500

// Import reads a line-oriented word list from r and stores the well-formed
// words. Inserts run in batched transactions; duplicates are ignored.
// progress, if non-nil, is called with the number of lines consumed as the
// scan advances. Returns the number of words actually inserted.
func (l *Lexicon) Import(ctx context.Context, r io.Reader, progress func(lines int)) (int, error) {
	var (
		tx       *sql.Tx
		stmt     *sql.Stmt
		inserted int
		scanned  int
	)
	begin := func() error {
		var err error
		if tx, err = l.db.BeginTx(ctx, nil); err != nil {
			return err
		}
		if stmt, err = tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, length) VALUES (?, ?)`); err != nil {
			_ = tx.Rollback()
			return err
		}
		return nil
	}
	commit := func() error {
		_ = stmt.Close()
		return tx.Commit()
	}

	if err := begin(); err != nil {
		return 0, err
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if progress != nil {
			progress(1)
		}
		w := strings.TrimSpace(sc.Text())
		if w == "" || !isAlpha(w) {
			continue
		}
		res, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
		scanned++
		if scanned%importBatch == 0 {
			if err := commit(); err != nil {
				return inserted, err
			}
			if err := begin(); err != nil {
				return inserted, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		_ = tx.Rollback()
		return inserted, err
	}
	if err := commit(); err != nil {
		return inserted, err
	}
	log.Debug().Int("inserted", inserted).Str("db", l.path).Msg("lexicon import")
	return inserted, nil
}

// Words returns the stored words of exactly length, sorted.
// length <= 0 returns every word.
func (l *Lexicon) Words(ctx context.Context, length int) ([]string, error) {
	if length > 0 {
		return l.list(ctx, `SELECT word FROM words WHERE length = ? ORDER BY word`, length)
	}
	return l.list(ctx, `SELECT word FROM words ORDER BY word`)
}

// MinLenWords returns the stored words of at least minLen letters, sorted.
func (l *Lexicon) MinLenWords(ctx context.Context, minLen int) ([]string, error) {
	return l.list(ctx, `SELECT word FROM words WHERE length >= ? ORDER BY word`, minLen)
}

func (l *Lexicon) list(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Stats returns the stored word count per length.
func (l *Lexicon) Stats(ctx context.Context) (map[int]int, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT length, COUNT(1) FROM words GROUP BY length`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var length, count int
		if err := rows.Scan(&length, &count); err != nil {
			return nil, err
		}
		out[length] = count
	}
	return out, rows.Err()
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
