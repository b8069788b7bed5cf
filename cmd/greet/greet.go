// Package greet implements the greet command.
package greet

import (
	"fmt"

	"github.com/alan/release-notes/internal/greet"
	"github.com/spf13/cobra"
)

// NewGreetCmd creates and returns the greet command
func NewGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "greet [name]",
		Short:        "Print a greeting",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			fmt.Fprintln(cobraCmd.OutOrStdout(), greet.Greet(name))
			return nil
		},
	}
}
