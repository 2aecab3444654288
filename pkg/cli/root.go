// Package cli implements the lactance admin command-line interface.
package cli

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	internaldb "github.com/CodigoDemente/lactance-tracker-back/internal/db"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lactance",
		Short:         "Feeding tracker admin CLI",
		Long:          "Administrative command-line interface for the feeding tracker API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			applyEnvDefaults(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String("db-path", "lactance.sqlite", "Path to the SQLite database file")

	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// applyEnvDefaults fills any flag the user did not set from a matching
// LACTANCE_<FLAG> environment variable (db-path -> LACTANCE_DB_PATH).
// Precedence: flag > env > default.
func applyEnvDefaults(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := "LACTANCE_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v := os.Getenv(key); v != "" {
			_ = flags.Set(f.Name, v)
		}
	})
}

// openPools opens the write/read SQLite pools for the db-path flag and runs
// pending migrations. The caller must invoke the returned cleanup.
func openPools(cmd *cobra.Command) (writeDB, readDB *sql.DB, cleanup func(), err error) {
	dbPath, err := cmd.Flags().GetString("db-path")
	if err != nil {
		return nil, nil, nil, err
	}
	return openPoolsPath(dbPath)
}

func openPoolsPath(dbPath string) (writeDB, readDB *sql.DB, cleanup func(), err error) {
	writeDB, readDB, err = internaldb.OpenSQLitePair(dbPath, 2)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	cleanup = func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	}

	if err := internaldb.RunMigrations(writeDB); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("migrations: %w", err)
	}
	return writeDB, readDB, cleanup, nil
}
