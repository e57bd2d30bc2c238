package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wspwll/risk-radar/internal/adapters/xlsx"
	"github.com/wspwll/risk-radar/internal/domain"
)

func (a *app) archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect and extend the history of removed risks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived risks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := tablewriter.NewWriter(cmd.OutOrStdout())
			t.SetHeader([]string{"Archived", "Risk", "Impact", "Likelihood", "Date"})
			for _, r := range a.session.Archive() {
				t.Append([]string{
					stamp(&r.ArchivedAt),
					r.Name,
					compactCurrency(r.TotalImpact),
					fmt.Sprintf("%.1f%%", r.Likelihood),
					domain.FormatDate(r.DateAdded),
				})
			}
			t.Render()
			return nil
		},
	}

	var out string
	retire := &cobra.Command{
		Use:   "retire <risk name>",
		Short: "Move every imported risk with this name into the archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			n := 0
			for _, r := range a.session.Records() {
				if strings.EqualFold(strings.TrimSpace(r.Name), name) && a.session.Remove(r.ID) {
					n++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "archived %d risks named %q\n", n, name)
			if out != "" {
				if err := xlsx.WriteFile(out, a.session.Export()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "remaining registry written to %s\n", out)
			}
			return nil
		},
	}
	retire.Flags().StringVarP(&out, "out", "o", "", "write the remaining registry to this workbook")

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the archive without --yes")
			}
			a.session.ClearArchive()
			fmt.Fprintln(cmd.OutOrStdout(), "archive cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm")

	cmd.AddCommand(list, retire, clearCmd)
	return cmd
}
