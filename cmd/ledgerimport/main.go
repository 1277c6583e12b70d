package main

import (
	"os"

	"github.com/ledgerimport-dev/ledgerimport/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
