package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glacierdb/glacier/cmd/glacier/commands"
	"github.com/glacierdb/glacier/config"
	"github.com/glacierdb/glacier/logger"
)

var rootCmd = &cobra.Command{
	Use:   "glacier",
	Short: "Glacier - versioned table metadata and snapshot lineage",
	Long: `Glacier - snapshot-versioned table metadata.

Glacier tracks a table's history as an append-only, branchable chain of
snapshots and answers lineage questions over it, tolerating expired history.

Available commands:
  history     - Show the main branch's ancestor chain
  ancestors   - Walk the ancestor chain from a snapshot
  is-ancestor - Test whether one snapshot is an ancestor of another
  oldest      - Find the oldest retained ancestor
  between     - List snapshots between two ids
  refs        - List branches and tags
  commit      - Append a snapshot to a branch
  branch/tag  - Create references
  expire      - Remove a snapshot from the retained set
  db          - Manage the catalog database

Examples:
  glacier commit --branch main
  glacier history
  glacier is-ancestor 7643080701261048220 929020898463024828
  glacier oldest --after 1724580000000`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func main() {
	defer logger.Cleanup()

	rootCmd.AddCommand(commands.HistoryCmd)
	rootCmd.AddCommand(commands.AncestorsCmd)
	rootCmd.AddCommand(commands.IsAncestorCmd)
	rootCmd.AddCommand(commands.OldestCmd)
	rootCmd.AddCommand(commands.BetweenCmd)
	rootCmd.AddCommand(commands.RefsCmd)
	rootCmd.AddCommand(commands.CommitCmd)
	rootCmd.AddCommand(commands.BranchCmd)
	rootCmd.AddCommand(commands.TagCmd)
	rootCmd.AddCommand(commands.ExpireCmd)
	rootCmd.AddCommand(commands.DbCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
