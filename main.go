package main

import (
	"os"

	"github.com/Anarkade/deliaxe-core/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
