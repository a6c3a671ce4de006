package main

import (
	"os"

	"github.com/contactkeval/option-pricing/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
