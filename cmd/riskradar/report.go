package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/services/analytics"
)

func (a *app) reportCmd() *cobra.Command {
	var showSeries bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print exposure metrics for the current registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printStatus(cmd.OutOrStdout())
			a.printReport(cmd.OutOrStdout(), showSeries)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSeries, "series", false, "include the exposure-by-date matrix")
	return cmd
}

func (a *app) printStatus(w io.Writer) {
	if a.initResult.Message != "" {
		fmt.Fprintln(w, a.initResult.Message)
	}
	for _, d := range a.initResult.Diagnostics {
		fmt.Fprintln(w, "  "+d.String())
	}
}

func (a *app) printReport(w io.Writer, showSeries bool) {
	rows := a.session.Records()
	dash := a.session.Dashboard()

	s := dash.Summary
	fmt.Fprintf(w, "Entries: %d  Total impact: %s  Risk by likelihood: %s  Average: %s\n",
		s.Entries, compactCurrency(s.TotalImpact), compactCurrency(s.TotalExposure), compactCurrency(s.AverageExposure))
	q := dash.Quadrants
	fmt.Fprintf(w, "Quadrants: low %d  medium %d  high %d  critical %d\n\n", q.Low, q.Medium, q.High, q.Critical)

	risks := tablewriter.NewWriter(w)
	risks.SetHeader([]string{"Trend", "Risk", "Impact", "Likelihood", "Exposure", "Quadrant", "Responsible", "Date"})
	for _, r := range rows {
		risks.Append([]string{
			formatChange(dash.Changes[r.ID]),
			r.Name,
			compactCurrency(r.TotalImpact),
			fmt.Sprintf("%.1f%%", r.Likelihood),
			compactCurrency(r.WeightedExposure()),
			analytics.Classify(r, dash.YMid).String(),
			r.Responsible,
			domain.FormatDate(r.DateAdded),
		})
	}
	risks.Render()

	if len(dash.Quarters) > 0 {
		fmt.Fprintln(w)
		quarters := tablewriter.NewWriter(w)
		quarters.SetHeader([]string{"Quarter", "Risk by likelihood"})
		for _, qt := range dash.Quarters {
			quarters.Append([]string{qt.Key(), fmt.Sprintf("%.0f", qt.Total)})
		}
		quarters.Render()
	}

	if showSeries && len(dash.TimeSeries.Dates) > 0 {
		fmt.Fprintln(w)
		series := tablewriter.NewWriter(w)
		header := []string{"Risk"}
		for _, d := range dash.TimeSeries.Dates {
			header = append(header, d.String())
		}
		series.SetHeader(header)
		for _, sr := range dash.TimeSeries.Series {
			line := []string{sr.Name}
			for _, p := range sr.Points {
				if p.Present {
					line = append(line, fmt.Sprintf("%.0f", p.Value))
				} else {
					line = append(line, "")
				}
			}
			series.Append(line)
		}
		series.Render()
	}
}
