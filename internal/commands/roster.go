package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CreateDBCmd returns the create_db command
func CreateDBCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "create_db",
		Short: "Drop and recreate every roster table",
		Long:  `Drops the hero, slogan, clash and story tables and creates them again, empty. There is no confirmation step.`,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Store.CreateSchema(ctx); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "\nA new database has been created.")
				return nil
			})
		},
	}
}

// SeedDBCmd returns the seed_db command
func SeedDBCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "seed_db",
		Short: "Load the demo heroes, slogans, clashes and stories",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Store.SeedFixture(ctx); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "\nDatabase is filled with TEST DATA.")
				return nil
			})
		},
	}
}

// AddHeroCmd returns the addhero command
func AddHeroCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "addhero <name> <side> <birthday>",
		Short: "Add a hero",
		Long: `Add a hero with a unique name. The birthday is day.month.year.

Examples:
  roster addhero Aldric dawn 07.11.1879`,
		Args: exactArgs(3),

		// Names and dates are taken verbatim, even when they start with a dash
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				return rt.Store.AddHeroFromString(ctx, args[0], args[1], args[2])
			})
		},
	}
}

// AddSloganCmd returns the addslogan command
func AddSloganCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "addslogan <name> <moto>",
		Short: "Attribute a new slogan to a hero",
		Args:  exactArgs(2),

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				return rt.Store.AddSlogan(ctx, args[0], args[1])
			})
		},
	}
}

// AddClashCmd returns the addclash command
func AddClashCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "addclash",
		Short: "Stage a random clash between heroes of two different sides",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				_, err := rt.Store.AddClash(ctx)
				return err
			})
		},
	}
}

// AddStoryCmd returns the addstory command
func AddStoryCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "addstory <name> <story>",
		Short: "Attach a story to a hero",
		Args:  exactArgs(2),

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				return rt.Store.AddStoryToHero(ctx, args[0], args[1])
			})
		},
	}
}

// DeleteHeroCmd returns the deletehero command
func DeleteHeroCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "deletehero <name>",
		Short: "Delete a hero together with its slogans and story",
		Args:  exactArgs(1),

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Store.DeleteHero(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Hero %s deleted.\n", args[0])
				return nil
			})
		},
	}
}
