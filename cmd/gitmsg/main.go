package main

import (
	"os"

	"github.com/ariel-frischer/gitmsg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitFailure)
	}
}
