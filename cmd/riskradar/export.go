package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wspwll/risk-radar/internal/adapters/xlsx"
)

func (a *app) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the registry to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = fmt.Sprintf("risks_export_%s.xlsx", time.Now().Format("2006-01-02"))
			}
			if err := xlsx.WriteFile(out, a.session.Export()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d risks to %s\n", len(a.session.Records()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default risks_export_<date>.xlsx)")
	return cmd
}
