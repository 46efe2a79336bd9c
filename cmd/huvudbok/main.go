package main

import (
	"os"

	"github.com/huvudbok-dev/huvudbok/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
