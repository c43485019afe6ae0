package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func hashkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashkey <key>",
		Short: "Hash an API key for NYT_API_KEY_HASH",
		Long: `Hash an API key for NYT_API_KEY_HASH.

The assist API exchanges the raw key for bearer tokens; only the bcrypt hash
is ever configured on the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash key: %w", err)
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}
