package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/latoulicious/roster/pkg/database"
	"github.com/spf13/cobra"
)

// DBCheckCmd returns the dbcheck command, which reports connectivity and
// whether the roster tables exist.
func DBCheckCmd(open RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "dbcheck",
		Short: "Check database connectivity and the roster tables",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(ctx context.Context, rt *Runtime) error {
				health, err := database.Check(ctx, rt.DB)
				if err != nil {
					rt.Logger.Error("Database check failed", err, nil)
					return err
				}

				out := cmd.OutOrStdout()
				ok := color.New(color.FgGreen)
				warn := color.New(color.FgYellow)

				ok.Fprintf(out, "Connected to %s %s\n", health.Dialect, health.Version)
				fmt.Fprintf(out, "Ping: %v\n", health.PingDuration)
				fmt.Fprintf(out, "Pool: open=%d in_use=%d idle=%d\n",
					health.Pool.OpenConnections, health.Pool.InUse, health.Pool.Idle)

				tables := make([]string, 0, len(health.Tables))
				for table := range health.Tables {
					tables = append(tables, table)
				}
				sort.Strings(tables)

				for _, table := range tables {
					if health.Tables[table] {
						ok.Fprintf(out, "   - %s: exists\n", table)
					} else {
						warn.Fprintf(out, "   - %s: missing\n", table)
					}
				}

				if !health.Ready() {
					warn.Fprintln(out, "Schema incomplete, run create_db")
				}
				return nil
			})
		},
	}
}
