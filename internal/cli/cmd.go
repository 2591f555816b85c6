package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"go.abhg.dev/carve/internal/carve"
	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/silog"
)

// mainCmd is the complete grammar of the command.
//
// The command is verb-less: run with no flags, it starts a new split.
// The --continue, --abort, and --status flags
// select the other operations of the protocol.
type mainCmd struct {
	carve.Options

	Continue bool `short:"c" xor:"verb" help:"Commit the staged slice and continue the split."`
	Abort    bool `xor:"verb" help:"Abandon the split and restore the original commit."`
	Status   bool `short:"s" xor:"verb" help:"Show the split in progress, if any."`

	// Flags whose effects are applied before Run.
	Verbose          bool               `short:"v" config:"verbose" default:"${verbose}" help:"Log detailed output."`
	Dir              kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything."`
	Version          versionFlag        `help:"Print version information and quit."`
	CompletionScript completionFlag     `enum:"bash,zsh,fish," default:"" hidden:"" help:"Print a script to set up shell completion and quit."`
}

func (cmd *mainCmd) AfterApply(log *silog.Logger) error {
	if cmd.Verbose {
		log.SetLevel(silog.LevelDebug)
	}
	return nil
}

func (cmd *mainCmd) Run(
	ctx context.Context,
	kctx *kong.Context,
	log *silog.Logger,
	id carve.Identity,
) error {
	repo, err := git.Open(ctx, ".", git.OpenOptions{Log: log})
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.OpenWorktree(ctx, ".")
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	handler := &carve.Handler{
		Log:        log,
		Repository: repo,
		Worktree:   wt,
		Store:      state.NewStore(filepath.Join(wt.GitDir(), id.StateDir), log),
		Identity:   id,
	}

	switch {
	case cmd.Continue:
		return handler.Step(ctx, &cmd.Options)
	case cmd.Abort:
		return handler.Abort(ctx)
	case cmd.Status:
		report, err := handler.Status(ctx)
		if err != nil {
			return err
		}
		return renderStatus(kctx.Stdout, report, id, time.Now())
	default:
		return handler.Begin(ctx, &cmd.Options)
	}
}
