package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError reports a wrong number of command-line arguments. Counts
// include the command word itself.
type UsageError struct {
	Got      int
	Expected int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("wrong arguments length %d, expected %d", e.Got, e.Expected)
}

// exactArgs accepts exactly n arguments after the command word
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Got: len(args) + 1, Expected: n + 1}
		}
		return nil
	}
}
