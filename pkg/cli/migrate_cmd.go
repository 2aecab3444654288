package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// openPools already applies pending migrations.
			_, _, cleanup, err := openPools(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			_, _ = fmt.Fprintln(os.Stdout, "migrations up to date")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(os.Stdout, "lactance version %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}
