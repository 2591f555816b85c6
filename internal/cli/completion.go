package cli

import (
	"github.com/alecthomas/kong"
	"go.abhg.dev/komplete"
)

// completionFlag prints a script that sets up shell completion
// for the command and exits.
//
// The flag value names the shell to generate the script for.
// The zero value is the flag's default and means
// completion was not requested.
type completionFlag string

// AfterApply prints the completion script and exits the program.
// AfterApply instead of BeforeApply because the flag's value
// is not available until it has been applied.
//
// Kong applies the flag's default on every parse,
// so an empty value must be a no-op.
func (f completionFlag) AfterApply(kctx *kong.Context) error {
	if f == "" {
		return nil
	}

	cmd := komplete.Command{Shell: string(f)}
	if err := cmd.Run(kctx); err != nil {
		return err
	}

	kctx.Exit(0)
	return nil
}
