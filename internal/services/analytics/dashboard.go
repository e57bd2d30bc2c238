package analytics

import "github.com/wspwll/risk-radar/internal/domain"

// Dashboard bundles every derived view for one state of the registry.
type Dashboard struct {
	Summary    Summary
	YMid       float64
	Quadrants  QuadrantCounts
	Changes    map[string]Change
	Quarters   []QuarterTotal
	TimeSeries TimeSeries
}

func Compute(active []domain.Risk, archived []domain.ArchivedRisk) Dashboard {
	return Dashboard{
		Summary:    Summarize(active),
		YMid:       YMid(active),
		Quadrants:  CountQuadrants(active),
		Changes:    PercentChanges(active, archived),
		Quarters:   Quarterly(active),
		TimeSeries: BuildTimeSeries(active),
	}
}
