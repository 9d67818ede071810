package main

import (
	"os"

	"binomci/cmd/binomci/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
