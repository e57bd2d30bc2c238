// Package analytics derives exposure metrics from registry and archive
// state. Everything here is a pure function of its inputs.
package analytics

import "github.com/wspwll/risk-radar/internal/domain"

// WeightedExposure is totalImpact × likelihood / 100.
func WeightedExposure(r domain.Risk) float64 {
	return r.WeightedExposure()
}

// Summary holds the headline figures over the active records.
type Summary struct {
	Entries         int
	TotalImpact     float64
	TotalExposure   float64
	AverageExposure float64 // 0 when there are no entries
}

func Summarize(rows []domain.Risk) Summary {
	var s Summary
	s.Entries = len(rows)
	for _, r := range rows {
		s.TotalImpact += r.TotalImpact
		s.TotalExposure += WeightedExposure(r)
	}
	if s.Entries > 0 {
		s.AverageExposure = s.TotalExposure / float64(s.Entries)
	}
	return s
}
