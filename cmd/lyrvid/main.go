package main

import (
	"os"

	"github.com/lyrvid/lyrvid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
