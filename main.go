package main

import (
	"os"

	"github.com/abhisek/knownwords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
