package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/glacierdb/glacier/errors"
	"github.com/glacierdb/glacier/table"
)

// CommitCmd appends a snapshot to a branch.
var CommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Append a snapshot to a branch",
	Long: `Append a new snapshot to a branch and advance its head. The first
commit of a table creates the root snapshot.

Examples:
  glacier commit
  glacier commit --branch audit --manifest-list s3://bucket/m42.avro
  glacier commit --summary operation=append --summary added-files=3`,
	RunE: runCommit,
}

// ExpireCmd removes a snapshot from the retained set.
var ExpireCmd = &cobra.Command{
	Use:   "expire <snapshot-id>",
	Short: "Remove a snapshot from the retained set",
	Long: `Remove a snapshot from the retained set. Parent links recorded on
retained descendants are not rewritten; lineage walks crossing the removed
snapshot stop at the resulting history boundary.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpire,
}

var (
	commitBranchFlag   string
	commitManifestFlag string
	commitSummaryFlag  []string
)

func init() {
	CommitCmd.Flags().StringVar(&commitBranchFlag, "branch", table.MainBranch, "branch to commit to")
	CommitCmd.Flags().StringVar(&commitManifestFlag, "manifest-list", "", "manifest list location for the snapshot")
	CommitCmd.Flags().StringArrayVar(&commitSummaryFlag, "summary", nil, "summary entry as key=value (repeatable)")
}

func runCommit(cmd *cobra.Command, args []string) error {
	summary, err := parseSummary(commitSummaryFlag)
	if err != nil {
		return err
	}

	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	snap, err := store.Commit(commitBranchFlag, commitManifestFlag, summary)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Committed snapshot %d to %q\n", snap.ID, commitBranchFlag)
	return nil
}

func runExpire(cmd *cobra.Command, args []string) error {
	id, err := parseSnapshotID(args[0])
	if err != nil {
		return err
	}

	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := store.ExpireSnapshot(id); err != nil {
		return err
	}

	pterm.Success.Printf("Expired snapshot %d\n", id)
	return nil
}

func parseSummary(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	summary := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.Newf("invalid summary entry %q, expected key=value", entry)
		}
		summary[key] = value
	}
	return summary, nil
}
