package main

import (
	"os"

	"github.com/vmizener/nyt/cmd/nyt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
