package main

import (
	"os"

	"github.com/abid327/distrib/cmd/distrib/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
