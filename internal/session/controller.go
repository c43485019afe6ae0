// internal/session/controller.go
//
// Session controller for the interactive elimination loop.
// Responsibilities:
//   - Own the working candidate set for one session.
//   - Drive the guess/verdict state machine:
//       AwaitingGuess   + valid guess   → AwaitingVerdict (guess pending)
//       AwaitingVerdict + valid verdict → encode, filter, AwaitingGuess
//   - Keep invalid input harmless: the state and candidate set are only
//     touched after a submission validates in full.
//   - Honor out-of-band reset (reload the word source) and terminate
//     signals from the presentation layer.
//
// Notes:
//   - Terminated is absorbing: no transition leaves it, including reset.
//   - MaxGuesses is advisory. The count is tracked and reported but never
//     enforced as a hard stop.
//   - A controller is owned by exactly one caller; it does no locking.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmizener/nyt/internal/solver"
	"github.com/vmizener/nyt/internal/words"
)

// State identifies what input the controller expects next.
type State string

const (
	StateAwaitingGuess   State = "awaiting_guess"
	StateAwaitingVerdict State = "awaiting_verdict"
	StateTerminated      State = "terminated"
)

const (
	DefaultWordLen    = 5
	DefaultMaxGuesses = 6
)

var (
	// ErrTerminated reports input after the session was terminated.
	ErrTerminated = errors.New("session terminated")
	// ErrState reports input the current state cannot accept.
	ErrState = errors.New("invalid in current state")
)

// Config carries the session dimensions.
type Config struct {
	WordLen    int // letters per word
	MaxGuesses int // advisory guess budget, reported only
}

func (c Config) withDefaults() Config {
	if c.WordLen <= 0 {
		c.WordLen = DefaultWordLen
	}
	if c.MaxGuesses <= 0 {
		c.MaxGuesses = DefaultMaxGuesses
	}
	return c
}

// Controller owns one session's candidate set and state.
type Controller struct {
	cfg     Config
	store   *words.Store
	set     words.Set
	state   State
	pending string
	guesses int
}

// New loads the word source and returns a controller awaiting its first
// guess. The store must serve words of the configured length.
func New(ctx context.Context, store *words.Store, cfg Config) (*Controller, error) {
	cfg = cfg.withDefaults()
	if store.Length() != cfg.WordLen {
		return nil, fmt.Errorf("word store serves %d-letter words, session needs %d", store.Length(), cfg.WordLen)
	}
	set, err := load(ctx, store, cfg.WordLen)
	if err != nil {
		return nil, err
	}
	return &Controller{
		cfg:   cfg,
		store: store,
		set:   set,
		state: StateAwaitingGuess,
	}, nil
}

// load reads the source and rejects an empty result: a session over zero
// words has nothing to eliminate.
func load(ctx context.Context, store *words.Store, length int) (words.Set, error) {
	set, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no %d-letter words in %s", length, store.Describe())
	}
	return set, nil
}

// State reports what the controller expects next.
func (c *Controller) State() State { return c.state }

// SubmitGuess accepts a guess and moves to AwaitingVerdict.
// Invalid input leaves the state unchanged.
func (c *Controller) SubmitGuess(word string) error {
	switch c.state {
	case StateTerminated:
		return ErrTerminated
	case StateAwaitingVerdict:
		return fmt.Errorf("%w: awaiting verdict for %q", ErrState, c.pending)
	}
	if err := solver.CheckGuess(word, c.cfg.WordLen); err != nil {
		return err
	}
	c.pending = word
	c.state = StateAwaitingVerdict
	return nil
}

// SubmitVerdict accepts the verdict line for the pending guess, filters the
// candidate set, and moves back to AwaitingGuess. Invalid input leaves the
// state and the candidate set unchanged.
func (c *Controller) SubmitVerdict(line string) error {
	switch c.state {
	case StateTerminated:
		return ErrTerminated
	case StateAwaitingGuess:
		return fmt.Errorf("%w: no pending guess", ErrState)
	}
	vs, err := solver.ParseVerdicts(line, c.cfg.WordLen)
	if err != nil {
		return err
	}
	cons, err := solver.Encode(c.pending, vs)
	if err != nil {
		return err
	}
	c.set = solver.Apply(c.set, cons)
	c.pending = ""
	c.guesses++
	c.state = StateAwaitingGuess
	return nil
}

// Apply runs one full guess/verdict cycle as a single operation, for
// frontends that deliver the pair together. The whole pair is validated
// before anything mutates, so a bad pair leaves the controller in
// AwaitingGuess with the candidate set intact.
func (c *Controller) Apply(guess, verdict string) error {
	switch c.state {
	case StateTerminated:
		return ErrTerminated
	case StateAwaitingVerdict:
		return fmt.Errorf("%w: awaiting verdict for %q", ErrState, c.pending)
	}
	if err := solver.CheckGuess(guess, c.cfg.WordLen); err != nil {
		return err
	}
	vs, err := solver.ParseVerdicts(verdict, c.cfg.WordLen)
	if err != nil {
		return err
	}
	cons, err := solver.Encode(guess, vs)
	if err != nil {
		return err
	}
	c.set = solver.Apply(c.set, cons)
	c.guesses++
	return nil
}

// Reset reloads the word source and starts the session over. Valid from any
// state except Terminated; on load failure the session is left as it was.
func (c *Controller) Reset(ctx context.Context) error {
	if c.state == StateTerminated {
		return ErrTerminated
	}
	set, err := load(ctx, c.store, c.cfg.WordLen)
	if err != nil {
		return err
	}
	c.set = set
	c.pending = ""
	c.guesses = 0
	c.state = StateAwaitingGuess
	return nil
}

// Terminate ends the session. No further transitions are accepted.
func (c *Controller) Terminate() { c.state = StateTerminated }

// Pending returns the guess awaiting its verdict, if any.
func (c *Controller) Pending() string { return c.pending }

// Remaining reports the current candidate count. Zero is a valid state:
// no word satisfies all feedback received so far.
func (c *Controller) Remaining() int { return len(c.set) }

// Candidates returns the current candidate set in sorted order.
func (c *Controller) Candidates() []string { return c.set.Sorted() }

// Guesses reports how many guess/verdict cycles have been applied.
func (c *Controller) Guesses() int { return c.guesses }

// Config returns the session dimensions.
func (c *Controller) Config() Config { return c.cfg }
