package main

import (
	"os"

	"github.com/ppiankov/rssmon/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
