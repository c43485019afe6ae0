package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vmizener/nyt/internal/session"
	"github.com/vmizener/nyt/internal/solver"
)

const wordleHelp = `
This is an interactive solver utility for "Wordle", a popular word game.

This utility helps by providing a list of legal words, given information from prior guesses.

Simply input a guess at the ">" prompt, followed by a validation string indicating feedback to the guess at the "?" prompt.  The utility will then provide a list of potential guesses in response.

A validation string indicates which letters of a guess are green, yellow, or grey, based on position.

E.g. after submitting the guess "earth", a validation string of "gy..." indicates "e" as green, "a" as yellow, and "r", "t", and "h" as grey.

At any time, a user may submit "?" to receive the list of potential guesses.  This list is given automatically once the number of potential options is below a fixed threshold.

Note that the solver does not respect the game's rule of restricting input to defined words.

For reference, the following inputs are supported:
    ?     Print a list of potential guesses, given prior guesses.
    ??    Print this help message.
    ^C    Quit the game.
    ^D    Reset the game, forgetting any prior guesses.
`

const inputHelp = "Enter '?' for word list, or '??' for detailed help.\nInput '^C' to quit, or '^D' to reset."

// dumpCols is how many words print per row of a candidate dump.
const dumpCols = 5

func wordleCmd() *cobra.Command {
	var (
		wordLen       int
		maxGuesses    int
		dumpThreshold int
	)
	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Interactive Wordle elimination assistant",
		Long:  strings.TrimSpace(wordleHelp),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeSrc, err := wordSource()
			if err != nil {
				return err
			}
			defer closeSrc()

			st := src(wordLen)
			ctrl, err := session.New(cmd.Context(), st, session.Config{
				WordLen:    wordLen,
				MaxGuesses: maxGuesses,
			})
			if err != nil {
				log.Fatal().Err(err).Str("source", st.Describe()).Msg("failed to load word list")
			}
			log.Debug().Int("words", ctrl.Remaining()).Str("source", st.Describe()).Msg("word list loaded")

			r := &repl{
				ctrl:      ctrl,
				in:        bufio.NewReader(cmd.InOrStdin()),
				threshold: dumpThreshold,
			}
			return r.run(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&wordLen, "word-len", "l", session.DefaultWordLen, "length of words")
	cmd.Flags().IntVarP(&maxGuesses, "max-guesses", "g", session.DefaultMaxGuesses, "max number of guesses (advisory)")
	cmd.Flags().IntVar(&dumpThreshold, "dump-threshold", 25, "list candidates automatically at or below this count")
	return cmd
}

// repl drives the prompt loop against one session controller.
type repl struct {
	ctrl      *session.Controller
	in        *bufio.Reader
	threshold int
	eofStreak int
}

func (r *repl) run(ctx context.Context) error {
	// ^C quits. The extra newline keeps the shell prompt clean.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		<-sig
		fmt.Println()
		os.Exit(0)
	}()

	for r.ctrl.State() != session.StateTerminated {
		r.cycle(ctx)
	}
	return nil
}

// cycle reports the candidate status, then walks one guess/verdict pair.
func (r *repl) cycle(ctx context.Context) {
	switch n := r.ctrl.Remaining(); {
	case n == 0:
		fmt.Println("No legal words remaining.  Input ^C to quit, or ^D to reset.")
	case n <= r.threshold:
		r.dumpOptions()
	}

	guess, ok := r.promptGuess(ctx)
	if !ok {
		return
	}
	r.promptVerdict(ctx, guess)
}

// promptGuess reads lines until one is accepted as the pending guess.
// ok is false when the cycle was cut short by a reset or termination.
func (r *repl) promptGuess(ctx context.Context) (guess string, ok bool) {
	for {
		line, err := r.readLine("> ")
		if err != nil {
			r.handleEOF(ctx)
			return "", false
		}
		if r.meta(line) {
			continue
		}
		if err := r.ctrl.SubmitGuess(line); err != nil {
			if errors.Is(err, solver.ErrLength) {
				fmt.Printf("Guess must be %d characters\n", r.ctrl.Config().WordLen)
			} else {
				fmt.Println("Guess must contain only lowercase letters")
			}
			fmt.Println(inputHelp)
			continue
		}
		return line, true
	}
}

// promptVerdict reads lines until the pending guess gets its verdict, then
// echoes the guess colored per letter.
func (r *repl) promptVerdict(ctx context.Context, guess string) {
	for {
		line, err := r.readLine("? ")
		if err != nil {
			r.handleEOF(ctx)
			return
		}
		if r.meta(line) {
			continue
		}
		if err := r.ctrl.SubmitVerdict(line); err != nil {
			if errors.Is(err, solver.ErrLength) {
				fmt.Printf("Validation string must be %d characters\n", r.ctrl.Config().WordLen)
			} else {
				fmt.Println("Validation string must contain only 'g', 'y', or '.' characters")
			}
			fmt.Println(inputHelp)
			continue
		}
		fmt.Println(colorize(guess, line))
		if g, budget := r.ctrl.Guesses(), r.ctrl.Config().MaxGuesses; g >= budget {
			log.Debug().Int("guesses", g).Int("budget", budget).Msg("guess budget reached")
		}
		return
	}
}

// meta handles the inputs shared by both prompts.
func (r *repl) meta(line string) bool {
	switch line {
	case "?":
		r.dumpOptions()
	case "??":
		fmt.Println(wordleHelp)
	default:
		return false
	}
	return true
}

// readLine prompts and returns the next input line without its terminator.
func (r *repl) readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	r.eofStreak = 0
	return strings.TrimRight(line, "\r\n"), nil
}

// handleEOF turns ^D into a reset. A second EOF with no input in between
// means the stream is closed for good, so quit instead of spinning.
func (r *repl) handleEOF(ctx context.Context) {
	r.eofStreak++
	if r.eofStreak > 1 {
		r.ctrl.Terminate()
		return
	}
	fmt.Println()
	if err := r.ctrl.Reset(ctx); err != nil {
		log.Error().Err(err).Msg("reset failed")
		r.ctrl.Terminate()
		return
	}
	fmt.Println("Game reset.")
}

// dumpOptions prints the sorted candidate list in fixed columns.
func (r *repl) dumpOptions() {
	opts := r.ctrl.Candidates()
	for i, w := range opts {
		fmt.Printf("%s ", w)
		if (i+1)%dumpCols == 0 {
			fmt.Println()
		}
	}
	if len(opts)%dumpCols != 0 {
		fmt.Println()
	}
}

// colorize renders the guess with each letter tinted by its verdict.
func colorize(guess, verdict string) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		ch := string(guess[i])
		switch verdict[i] {
		case 'g':
			b.WriteString(color.Ize(color.Green, ch))
		case 'y':
			b.WriteString(color.Ize(color.Yellow, ch))
		default:
			b.WriteString(ch)
		}
	}
	return b.String()
}
