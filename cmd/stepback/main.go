package main

import (
	"os"

	"github.com/rustyeddy/stepback/cmd/stepback/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
