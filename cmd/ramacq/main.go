package main

import (
	"os"

	"ramacq/cmd/ramacq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
