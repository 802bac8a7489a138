package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/glacierdb/glacier/config"
	"github.com/glacierdb/glacier/db"
	"github.com/glacierdb/glacier/errors"
	"github.com/glacierdb/glacier/logger"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the catalog database",
	Long: `Manage catalog database operations.

Examples:
  glacier db migrate              # Apply pending schema migrations
  glacier db stats                # Show snapshot and reference counts`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot and reference counts",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	conn, err := db.OpenWithMigrations(cfg.Catalog.Path, logger.Logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	pterm.Success.Printf("Catalog schema up to date: %s\n", cfg.Catalog.Path)
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	conn, err := db.OpenWithMigrations(cfg.Catalog.Path, logger.Logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	var snapshots, tables, branches, tags int
	if err := conn.QueryRow("SELECT COUNT(*), COUNT(DISTINCT table_name) FROM snapshots").Scan(&snapshots, &tables); err != nil {
		return errors.Wrap(err, "count snapshots")
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM refs WHERE type = 'branch'").Scan(&branches); err != nil {
		return errors.Wrap(err, "count branches")
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM refs WHERE type = 'tag'").Scan(&tags); err != nil {
		return errors.Wrap(err, "count tags")
	}

	rows := pterm.TableData{
		{"METRIC", "VALUE"},
		{"tables", strconv.Itoa(tables)},
		{"retained snapshots", strconv.Itoa(snapshots)},
		{"branches", strconv.Itoa(branches)},
		{"tags", strconv.Itoa(tags)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	return nil
}
