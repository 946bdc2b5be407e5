package main

import (
	"os"

	"github.com/shidetake/codeceval/internal/cli"
)

func main() {
	// Cobra reports the error itself
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
