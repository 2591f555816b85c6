// git-chip is the older name of git-carve,
// kept so existing installations and muscle memory keep working.
// It runs the same engine with its own sessions and configuration.
package main

import (
	"os"

	"go.abhg.dev/carve/internal/carve"
	"go.abhg.dev/carve/internal/cli"
)

func main() {
	os.Exit(cli.Main(carve.GitChip))
}
