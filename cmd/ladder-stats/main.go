package main

import (
	"os"

	"github.com/deppfellow/ladder-stats/cmd/ladder-stats/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
