package main

import (
	"os"

	"github.com/reliefops/aidcycle/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
