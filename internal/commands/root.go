package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/latoulicious/roster/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the roster CLI. Every subcommand opens its runtime
// through open and closes it before returning.
func NewRootCommand(open RuntimeFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "roster <command> [args...]",
		Short:   "Seed and mutate the hero roster database",
		Version: version.Get().String(),
		Long: `roster manages a small relational schema of heroes, their slogans,
random clashes between heroes of different sides, and hero stories.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing happened.")
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// "help" is just another unknown command
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(CreateDBCmd(open))
	rootCmd.AddCommand(SeedDBCmd(open))
	rootCmd.AddCommand(AddHeroCmd(open))
	rootCmd.AddCommand(AddSloganCmd(open))
	rootCmd.AddCommand(AddClashCmd(open))
	rootCmd.AddCommand(AddStoryCmd(open))
	rootCmd.AddCommand(DeleteHeroCmd(open))
	rootCmd.AddCommand(DBCheckCmd(open))

	return rootCmd
}

// Execute runs the CLI and returns the process exit status. Usage errors go
// to stdout, everything else to stderr.
func Execute(ctx context.Context, rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stdout, usageErr.Error())
		return 1
	}

	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

// withRuntime opens a runtime for cmd, runs fn and always closes the runtime
func withRuntime(cmd *cobra.Command, open RuntimeFactory, fn func(ctx context.Context, rt *Runtime) error) error {
	ctx := cmd.Context()
	rt, err := open(ctx, cmd.Name())
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(ctx, rt)
}
