package main

import (
	"os"

	"octcalc/cmd/octc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
