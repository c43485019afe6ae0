package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vmizener/nyt/internal/lexicon"
	"github.com/vmizener/nyt/internal/words"
)

var (
	logLevel     string
	wordlistPath string
	dbPath       string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "nyt",
		Short: "Assistant toolkit for NYT word puzzles",
		Long: "nyt bundles an interactive Wordle elimination assistant, a Spelling Bee\n" +
			"solver, dictionary tooling, and a local HTTP assist service.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			lvl := logLevel
			if lvl == "" {
				lvl = getEnv("LOG_LEVEL", "info")
			}
			if l, err := zerolog.ParseLevel(lvl); err == nil {
				zerolog.SetGlobalLevel(l)
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default $LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&wordlistPath, "wordlist", "", "word list file (default $NYT_WORDLIST)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "lexicon database (default $NYT_DB)")

	root.AddCommand(wordleCmd(), beeCmd(), dictCmd(), serveCmd(), hashkeyCmd())
	return root.Execute()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// pick returns the flag value when set, else the environment value.
func pick(flag, envKey string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(envKey)
}

// wordSource resolves the candidate word source shared by wordle and serve:
// explicit word-list file, then lexicon database, then the embedded default.
// The returned function builds a store per word length; the cleanup function
// releases the underlying lexicon handle, if any.
func wordSource() (func(length int) *words.Store, func(), error) {
	if path := pick(wordlistPath, "NYT_WORDLIST"); path != "" {
		return func(length int) *words.Store {
			return words.FileStore(path, length)
		}, func() {}, nil
	}

	if path := pick(dbPath, "NYT_DB"); path != "" {
		lex, err := lexicon.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return func(length int) *words.Store {
				return words.LexiconStore(lex, path, length)
			}, func() {
				_ = lex.Close()
			}, nil
	}

	return func(length int) *words.Store {
		return words.EmbeddedStore(length)
	}, func() {}, nil
}
