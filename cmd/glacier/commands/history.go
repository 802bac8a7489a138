package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/glacierdb/glacier/lineage"
	"github.com/glacierdb/glacier/table"
)

// HistoryCmd shows the main branch's ancestor chain, newest first.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the main branch's ancestor chain",
	Long: `Walk the current main head's parent chain, newest first, down to the
root or to the history boundary left behind by snapshot expiration.`,
	RunE: runHistory,
}

// AncestorsCmd walks the chain from an explicit snapshot.
var AncestorsCmd = &cobra.Command{
	Use:   "ancestors <snapshot-id>",
	Short: "Walk the ancestor chain from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runAncestors,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	snaps := lineage.CurrentAncestors(store).Collect()
	if len(snaps) == 0 {
		pterm.Info.Println("Table has no commits yet")
		return nil
	}
	renderChain(snaps)
	return nil
}

func runAncestors(cmd *cobra.Command, args []string) error {
	id, err := parseSnapshotID(args[0])
	if err != nil {
		return err
	}

	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	snaps := lineage.Ancestors(id, store.Snapshot).Collect()
	if len(snaps) == 0 {
		pterm.Warning.Printf("Snapshot %d is not retained\n", id)
		return nil
	}
	renderChain(snaps)

	// A trailing parent link past the last row means the walk hit the
	// history boundary, not the root.
	if last := snaps[len(snaps)-1]; last.HasParent() {
		parent, _ := last.Parent()
		pterm.Warning.Printf("History truncated: parent %d has been expired\n", parent)
	}
	return nil
}

func renderChain(snaps []*table.Snapshot) {
	rows := pterm.TableData{{"SNAPSHOT", "PARENT", "COMMITTED"}}
	for _, snap := range snaps {
		rows = append(rows, []string{
			strconv.FormatInt(snap.ID, 10),
			formatParent(snap),
			formatTimestamp(snap.TimestampMillis),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
