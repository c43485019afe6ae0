package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vmizener/nyt/internal/lexicon"
)

// defaultDBPath is where the lexicon lives when nothing else is configured.
const defaultDBPath = "./nyt.db"

func dictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the word lexicon",
	}
	cmd.AddCommand(dictImportCmd(), dictStatsCmd())
	return cmd
}

func dictImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <wordlist>...",
		Short: "Import word lists into the lexicon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := openLexicon()
			if err != nil {
				return err
			}
			defer lex.Close()

			total := 0
			for _, path := range args {
				inserted, err := importFile(cmd, lex, path)
				if err != nil {
					return err
				}
				total += inserted
			}
			fmt.Printf("Imported %d new words into %s\n", total, lex.Path())
			return nil
		},
	}
}

// importFile streams one word list into the lexicon behind a progress bar.
func importFile(cmd *cobra.Command, lex *lexicon.Lexicon, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	bar := progressbar.Default(-1, path)
	inserted, err := lex.Import(cmd.Context(), f, func(lines int) {
		_ = bar.Add(lines)
	})
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		return inserted, fmt.Errorf("import %s: %w", path, err)
	}
	log.Info().Int("inserted", inserted).Str("file", path).Msg("wordlist imported")
	return inserted, nil
}

func dictStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show word counts per length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := openLexicon()
			if err != nil {
				return err
			}
			defer lex.Close()

			stats, err := lex.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Println("Lexicon is empty.")
				return nil
			}

			lengths := make([]int, 0, len(stats))
			for l := range stats {
				lengths = append(lengths, l)
			}
			slices.Sort(lengths)

			total := 0
			fmt.Printf("%6s  %6s\n", "length", "words")
			for _, l := range lengths {
				fmt.Printf("%6d  %6d\n", l, stats[l])
				total += stats[l]
			}
			fmt.Printf("%6s  %6d\n", "total", total)
			return nil
		},
	}
}

// openLexicon opens the configured lexicon, falling back to the default path.
func openLexicon() (*lexicon.Lexicon, error) {
	path := pick(dbPath, "NYT_DB")
	if path == "" {
		path = defaultDBPath
	}
	lex, err := lexicon.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	log.Debug().Str("db", path).Msg("lexicon opened")
	return lex, nil
}
