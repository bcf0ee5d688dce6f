package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gameshub/driver/hub_db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *hub_db.Migrator) error {
			if err := mg.Up(); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1 step)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("steps must be a positive integer, got %q", args[0])
			}
			steps = n
		}
		return withMigrator(func(mg *hub_db.Migrator) error {
			if err := mg.Down(steps); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *hub_db.Migrator) error {
			return printVersion(cmd, mg)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(fn func(mg *hub_db.Migrator) error) error {
	url, err := databaseURL()
	if err != nil {
		return err
	}
	mg, err := hub_db.NewMigrator(url)
	if err != nil {
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			logger.Warn("closing migrator", "error", err)
		}
	}()
	return fn(mg)
}

func printVersion(cmd *cobra.Command, mg *hub_db.Migrator) error {
	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	state := okColor.Sprint("clean")
	if dirty {
		state = errColor.Sprint("dirty")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", version, state)
	return nil
}
