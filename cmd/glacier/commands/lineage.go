package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/glacierdb/glacier/lineage"
	"github.com/glacierdb/glacier/table"
)

// IsAncestorCmd tests ancestry between two snapshots.
var IsAncestorCmd = &cobra.Command{
	Use:   "is-ancestor <snapshot-id> [ancestor-id]",
	Short: "Test whether one snapshot is an ancestor of another",
	Long: `With two ids, tests whether the second id is an ancestor of the first.
With one id, tests whether it is an ancestor of the current main head.

--via-parent-link matches the parent link recorded on retained snapshots
instead of resolved snapshot identity, so it can confirm lineage through
ancestors that have since been expired.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runIsAncestor,
}

// OldestCmd finds the oldest retained ancestor.
var OldestCmd = &cobra.Command{
	Use:   "oldest [snapshot-id]",
	Short: "Find the oldest retained ancestor",
	Long: `Without arguments, finds the oldest retained ancestor of the main head.
With a snapshot id, walks from that snapshot instead.

--after restricts the answer to ancestors committed at or after the given
Unix-millisecond timestamp.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOldest,
}

// BetweenCmd lists snapshot ids between two snapshots.
var BetweenCmd = &cobra.Command{
	Use:   "between <from-id> <to-id>",
	Short: "List snapshots reachable from to-id down to from-id (exclusive)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBetween,
}

var (
	viaParentLinkFlag bool
	afterMillisFlag   int64
)

func init() {
	IsAncestorCmd.Flags().BoolVar(&viaParentLinkFlag, "via-parent-link", false,
		"match recorded parent links instead of resolved snapshots")
	OldestCmd.Flags().Int64Var(&afterMillisFlag, "after", 0,
		"only consider ancestors committed at or after this Unix-ms timestamp")
}

func runIsAncestor(cmd *cobra.Command, args []string) error {
	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	var snapshotID, ancestorID int64
	if len(args) == 2 {
		if snapshotID, err = parseSnapshotID(args[0]); err != nil {
			return err
		}
		if ancestorID, err = parseSnapshotID(args[1]); err != nil {
			return err
		}
	} else {
		if ancestorID, err = parseSnapshotID(args[0]); err != nil {
			return err
		}
		current := store.CurrentSnapshot()
		if current == nil {
			pterm.Info.Println("Table has no commits yet")
			return nil
		}
		snapshotID = current.ID
	}

	var result bool
	if viaParentLinkFlag {
		result = lineage.IsParentAncestorOf(store, snapshotID, ancestorID)
	} else {
		result = lineage.IsAncestorOf(store, snapshotID, ancestorID)
	}

	if result {
		pterm.Success.Printf("%d is an ancestor of %d\n", ancestorID, snapshotID)
	} else {
		pterm.Info.Printf("%d is not an ancestor of %d\n", ancestorID, snapshotID)
	}
	return nil
}

func runOldest(cmd *cobra.Command, args []string) error {
	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	var snap *table.Snapshot
	switch {
	case cmd.Flags().Changed("after"):
		snap = lineage.OldestAncestorAfter(store, afterMillisFlag)
		if snap == nil {
			pterm.Warning.Printf("No ancestor committed at or after %d\n", afterMillisFlag)
			return nil
		}
	case len(args) == 1:
		id, err := parseSnapshotID(args[0])
		if err != nil {
			return err
		}
		snap = lineage.OldestAncestorOf(store, id)
	default:
		snap = lineage.OldestAncestor(store)
	}

	if snap == nil {
		pterm.Info.Println("No retained ancestor found")
		return nil
	}
	renderChain([]*table.Snapshot{snap})
	return nil
}

func runBetween(cmd *cobra.Command, args []string) error {
	fromID, err := parseSnapshotID(args[0])
	if err != nil {
		return err
	}
	toID, err := parseSnapshotID(args[1])
	if err != nil {
		return err
	}

	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	snaps := lineage.AncestorsBetween(store, toID, fromID).Collect()
	if len(snaps) == 0 {
		pterm.Info.Printf("No snapshots between %d and %d\n", fromID, toID)
		return nil
	}
	renderChain(snaps)
	return nil
}
