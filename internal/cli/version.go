package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pulse %s\n", version.Info())
			return nil
		},
	}
}
