// git-carve splits the commit at the tip of the current branch
// into a sequence of smaller commits.
package main

import (
	"os"

	"go.abhg.dev/carve/internal/carve"
	"go.abhg.dev/carve/internal/cli"
)

func main() {
	os.Exit(cli.Main(carve.GitCarve))
}
