package main

import (
	"os"

	"github.com/afrgen-dev/afrgen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
