// Package commands defines the nyt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - wordle     Interactive Wordle elimination assistant
//   - bee        Spelling Bee solver
//   - dict       Lexicon database tooling (import, stats)
//   - serve      Local HTTP assist service
//   - hashkey    Generate the bcrypt hash for API auth
//
// # Implementation
//
// The root command loads .env configuration and sets the global log level
// before any subcommand runs. Commands that need a candidate word list
// resolve their source through a shared chain: an explicit word-list file
// (--wordlist or NYT_WORDLIST), then the lexicon database (--db or NYT_DB),
// then the embedded default list.
package commands
