package main

import (
	"os"

	"depot/cmd/depot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
