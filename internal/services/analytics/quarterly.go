package analytics

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/wspwll/risk-radar/internal/domain"
)

type QuarterTotal struct {
	Year    int
	Quarter int // 1..4
	Total   float64
}

// Key renders the quarter as "2025-Q1".
func (q QuarterTotal) Key() string {
	return fmt.Sprintf("%d-Q%d", q.Year, q.Quarter)
}

// QuarterOf returns the calendar quarter of d.
func QuarterOf(d civil.Date) (year, quarter int, ok bool) {
	if !d.IsValid() {
		return 0, 0, false
	}
	return d.Year, (int(d.Month)-1)/3 + 1, true
}

// Quarterly sums weighted exposure per quarter of DateAdded, ascending.
// Records without a valid date are left out.
func Quarterly(rows []domain.Risk) []QuarterTotal {
	type key struct{ year, quarter int }
	sums := make(map[key]float64)
	for _, r := range rows {
		y, q, ok := QuarterOf(r.DateAdded)
		if !ok {
			continue
		}
		sums[key{y, q}] += WeightedExposure(r)
	}
	out := make([]QuarterTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, QuarterTotal{Year: k.year, Quarter: k.quarter, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Quarter < out[j].Quarter
	})
	return out
}
