package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bq-audit %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  build date: %s\n", BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  git commit: %s\n", GitCommit)
		},
	}
}
