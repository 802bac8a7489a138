package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// RefsCmd lists the table's branches and tags.
var RefsCmd = &cobra.Command{
	Use:   "refs",
	Short: "List branches and tags",
	RunE:  runRefs,
}

// BranchCmd creates a branch at an existing snapshot.
var BranchCmd = &cobra.Command{
	Use:   "branch <name> <snapshot-id>",
	Short: "Create a branch at an existing snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runBranch,
}

// TagCmd creates a tag at an existing snapshot.
var TagCmd = &cobra.Command{
	Use:   "tag <name> <snapshot-id>",
	Short: "Create a tag at an existing snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runTag,
}

func runRefs(cmd *cobra.Command, args []string) error {
	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	refs, err := store.Refs()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		pterm.Info.Println("No references")
		return nil
	}

	rows := pterm.TableData{{"NAME", "TYPE", "SNAPSHOT"}}
	for _, ref := range refs {
		rows = append(rows, []string{
			ref.Name,
			string(ref.Type),
			strconv.FormatInt(ref.SnapshotID, 10),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	return nil
}

func runBranch(cmd *cobra.Command, args []string) error {
	return createRef(args, false)
}

func runTag(cmd *cobra.Command, args []string) error {
	return createRef(args, true)
}

func createRef(args []string, tag bool) error {
	name := args[0]
	id, err := parseSnapshotID(args[1])
	if err != nil {
		return err
	}

	store, conn, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	if tag {
		err = store.CreateTag(name, id)
	} else {
		err = store.CreateBranch(name, id)
	}
	if err != nil {
		return err
	}

	pterm.Success.Printf("Created %q at snapshot %d\n", name, id)
	return nil
}
