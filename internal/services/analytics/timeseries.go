package analytics

import (
	"sort"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/wspwll/risk-radar/internal/domain"
)

// Point is one cell of a series; Present is false where the risk has no
// record on that date.
type Point struct {
	Value   float64
	Present bool
}

type Series struct {
	Name   string
	Points []Point // aligned with TimeSeries.Dates
}

type TimeSeries struct {
	Dates  []civil.Date
	Series []Series
}

// BuildTimeSeries lays out weighted exposure by date (columns) and trimmed
// risk name (series). When several records share a name and date, the one
// closest to the front of rows wins.
func BuildTimeSeries(rows []domain.Risk) TimeSeries {
	dateSet := make(map[civil.Date]struct{})
	cells := make(map[string]map[civil.Date]float64)
	for _, r := range rows {
		if !r.HasDate() {
			continue
		}
		dateSet[r.DateAdded] = struct{}{}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		byDate, ok := cells[name]
		if !ok {
			byDate = make(map[civil.Date]float64)
			cells[name] = byDate
		}
		if _, taken := byDate[r.DateAdded]; !taken {
			byDate[r.DateAdded] = WeightedExposure(r)
		}
	}

	ts := TimeSeries{Dates: make([]civil.Date, 0, len(dateSet))}
	for d := range dateSet {
		ts.Dates = append(ts.Dates, d)
	}
	sort.Slice(ts.Dates, func(i, j int) bool { return ts.Dates[i].Before(ts.Dates[j]) })

	names := make([]string, 0, len(cells))
	for n := range cells {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		s := Series{Name: n, Points: make([]Point, len(ts.Dates))}
		for i, d := range ts.Dates {
			if v, ok := cells[n][d]; ok {
				s.Points[i] = Point{Value: v, Present: true}
			}
		}
		ts.Series = append(ts.Series, s)
	}
	return ts
}
