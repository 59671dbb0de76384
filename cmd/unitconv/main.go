package main

import (
	"os"

	"unitconv/cmd/unitconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
