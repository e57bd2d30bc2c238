package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var errNoSnapshot = errors.New("no such snapshot")

func (a *app) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage named captures of the registry",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := tablewriter.NewWriter(cmd.OutOrStdout())
			t.SetHeader([]string{"ID", "Name", "Rows", "Created", "Updated", "Renamed"})
			for _, s := range a.session.Snapshots() {
				t.Append([]string{s.ID, s.Name, fmt.Sprint(len(s.Rows)), stamp(&s.CreatedAt), stamp(s.UpdatedAt), stamp(s.RenamedAt)})
			}
			t.Render()
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Capture the imported registry as a new snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.session.CreateSnapshot(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "created snapshot %s (%s) with %d rows\n", snap.ID, snap.Name, len(snap.Rows))
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a snapshot with the imported registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.SelectSnapshot(args[0]) || !a.session.UpdateSnapshot() {
				return errNoSnapshot
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated snapshot %s\n", args[0])
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a snapshot",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.RenameSnapshot(args[0], strings.Join(args[1:], " ")) {
				return fmt.Errorf("rename %s: %w or blank name", args[0], errNoSnapshot)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed snapshot %s\n", args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.DeleteSnapshot(args[0]) {
				return errNoSnapshot
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted snapshot %s\n", args[0])
			return nil
		},
	}

	var series bool
	restore := &cobra.Command{
		Use:   "restore <id>",
		Short: "Load a snapshot into the registry and report on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.RestoreSnapshot(args[0]) {
				return errNoSnapshot
			}
			a.printReport(cmd.OutOrStdout(), series)
			return nil
		},
	}
	restore.Flags().BoolVar(&series, "series", false, "include the exposure-by-date matrix")

	cmd.AddCommand(list, create, update, rename, del, restore)
	return cmd
}

func stamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
