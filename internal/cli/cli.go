// Package cli implements the command line interface
// shared by the git-carve and git-chip binaries.
//
// Both binaries run the same grammar and the same engine.
// A [carve.Identity] tells each invocation which name it runs under,
// which git config section to consult,
// and where its session state lives,
// so installations of the two never see each other's sessions.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"go.abhg.dev/carve/internal/carve"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/silog"
	"go.abhg.dev/komplete"
)

// Main runs the command under the given identity
// and returns the exit code for the process.
func Main(id carve.Identity) int {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			// Restore default signal handling so that
			// a second interrupt kills the process.
			signal.Stop(sigc)
			cancel()
		case <-ctx.Done():
		}
	}()

	// Flag defaults come from the command's git config section.
	// Failure to read configuration is not fatal:
	// --help and --version must work even without git available.
	resolver, err := LoadConfig(ctx,
		git.NewConfig(git.ConfigOptions{Log: logger}), id.ConfigSection)
	if err != nil {
		logger.Debug("Could not load configuration", "error", err)
		resolver = &Config{section: id.ConfigSection}
	}

	verbose, _ := strconv.ParseBool(
		os.Getenv(strings.ToUpper(id.ConfigSection) + "_VERBOSE"))

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name(id.Name),
		kong.Description(id.Name+" splits the commit at the tip of the current branch "+
			"into a sequence of smaller commits."),
		kong.Bind(logger, id),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Resolvers(resolver),
		kong.Vars{
			"verbose": strconv.FormatBool(verbose),
		},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Help(func(options kong.HelpOptions, kctx *kong.Context) error {
			if err := kong.DefaultHelpPrinter(options, kctx); err != nil {
				return err
			}

			_, err := fmt.Fprintf(kctx.Stdout,
				"\n"+
					"Run '%[1]v' with no flags to start splitting the tip commit:\n"+
					"its full change is staged for you to carve into slices.\n"+
					"Unstage whatever later slices should keep,\n"+
					"then run '%[1]v --continue' to commit what is staged.\n"+
					"Repeat until every slice is committed.\n",
				id.Git,
			)
			return err
		}),
	)
	if err != nil {
		panic(err)
	}

	// Serves shell completion requests (COMP_LINE set) and exits.
	// No-op otherwise.
	komplete.Run(parser)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(false)
		}
		logger.Errorf("%v: %v", id.Name, err)
		return 1
	}

	if err := kctx.Run(); err != nil {
		logger.Errorf("%v: %v", id.Name, err)
		if hint := errorHint(err, id); hint != "" {
			logger.Info(hint)
		}
		return 1
	}

	return 0
}

// errorHint returns a follow-up suggestion
// for errors with a well-known next step.
func errorHint(err error, id carve.Identity) string {
	switch {
	case errors.Is(err, carve.ErrAlreadyInProgress):
		return fmt.Sprintf("Continue it with '%v --continue' or abandon it with '%v --abort'.",
			id.Git, id.Git)
	case errors.Is(err, carve.ErrNotInProgress):
		return fmt.Sprintf("Run '%v' on the commit you want to split to start one.", id.Git)
	case errors.Is(err, git.ErrDetachedHead):
		return "Check out the branch whose tip commit you want to split."
	default:
		return ""
	}
}
