package analytics

import "github.com/wspwll/risk-radar/internal/domain"

type Quadrant int

const (
	Low Quadrant = iota
	Medium
	High
	Critical
)

func (q Quadrant) String() string {
	switch q {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Critical:
		return "critical"
	}
	return "unknown"
}

// likelihoodSplit separates the left and right halves of the matrix.
const likelihoodSplit = 50

// YMid is half of the largest impact, with the axis floored at zero.
func YMid(rows []domain.Risk) float64 {
	peak := 0.0
	for _, r := range rows {
		if r.TotalImpact > peak {
			peak = r.TotalImpact
		}
	}
	return peak / 2
}

// Classify places r in a quadrant given the impact threshold yMid.
func Classify(r domain.Risk, yMid float64) Quadrant {
	right := r.Likelihood >= likelihoodSplit
	top := r.TotalImpact >= yMid
	switch {
	case !right && !top:
		return Low
	case !right && top:
		return Medium
	case right && !top:
		return High
	default:
		return Critical
	}
}

type QuadrantCounts struct {
	Low      int
	Medium   int
	High     int
	Critical int
}

func (c QuadrantCounts) Total() int { return c.Low + c.Medium + c.High + c.Critical }

// CountQuadrants classifies every row against the YMid of the same rows.
func CountQuadrants(rows []domain.Risk) QuadrantCounts {
	var c QuadrantCounts
	mid := YMid(rows)
	for _, r := range rows {
		switch Classify(r, mid) {
		case Low:
			c.Low++
		case Medium:
			c.Medium++
		case High:
			c.High++
		case Critical:
			c.Critical++
		}
	}
	return c
}
