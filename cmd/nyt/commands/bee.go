package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vmizener/nyt/internal/bee"
	"github.com/vmizener/nyt/internal/lexicon"
	"github.com/vmizener/nyt/internal/words"
)

// systemDict is the fallback dictionary when no wordlist or lexicon is
// configured. Present on most Unix systems.
const systemDict = "/usr/share/dict/words"

func beeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bee <letters> [min-len]",
		Short: "Solve a Spelling Bee puzzle",
		Long: `Solve a Spelling Bee puzzle.

Letters are given as a single lowercase string, e.g. "tlayrci". The first
letter is the required one. Matching words print one per line; pangrams are
marked with an asterisk. The optional second argument sets the minimum word
length (default 4).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := bee.Parse(args[0])
			if err != nil {
				return err
			}
			minLen := bee.DefaultMinLen
			if len(args) == 2 {
				minLen, err = strconv.Atoi(args[1])
				if err != nil || minLen < 1 {
					return fmt.Errorf("min-len must be a positive integer, got %q", args[1])
				}
			}

			dict, src, err := beeDictionary(cmd.Context(), minLen)
			if err != nil {
				return err
			}
			log.Debug().Int("words", len(dict)).Str("source", src).Msg("dictionary loaded")

			matches := bee.Solve(puzzle, minLen, dict)
			for _, m := range matches {
				if m.Pangram {
					fmt.Printf("%s *\n", m.Word)
				} else {
					fmt.Println(m.Word)
				}
			}
			log.Debug().
				Int("matches", len(matches)).
				Str("letters", puzzle.Letters()).
				Str("required", string(puzzle.Required())).
				Msg("puzzle solved")
			return nil
		},
	}
}

// beeDictionary resolves a mixed-length dictionary: configured wordlist
// first, then the lexicon, then the system dictionary.
func beeDictionary(ctx context.Context, minLen int) (dict []string, source string, err error) {
	if path := pick(wordlistPath, "NYT_WORDLIST"); path != "" {
		dict, err = readDict(path)
		return dict, path, err
	}
	if path := pick(dbPath, "NYT_DB"); path != "" {
		lex, err := lexicon.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer lex.Close()
		dict, err = lex.MinLenWords(ctx, minLen)
		if err != nil {
			return nil, "", fmt.Errorf("query lexicon %s: %w", path, err)
		}
		return dict, path, nil
	}
	dict, err = readDict(systemDict)
	return dict, systemDict, err
}

// readDict loads every well-formed word from a line-oriented list.
func readDict(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	dict, err := words.LoadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return dict, nil
}
