package main

import (
	"os"

	"spotdrill/cmd/spotdrill/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
