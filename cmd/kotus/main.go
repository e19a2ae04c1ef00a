package main

import (
	"os"

	"github.com/cours-de-latin/kotus/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
