package analytics

import (
	"sort"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/wspwll/risk-radar/internal/domain"
)

type Direction int

const (
	NoTrend Direction = iota
	Up
	Down
	Flat
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Flat:
		return "flat"
	}
	return ""
}

// Change compares the latest active record of a risk name with the record
// immediately before it. Defined is false when the previous impact is zero;
// Percent is meaningless in that case.
type Change struct {
	RecordID         string
	Name             string
	Previous         float64
	Current          float64
	Percent          float64
	Defined          bool
	PreviousArchived bool
}

func (c Change) Direction() Direction {
	switch {
	case !c.Defined:
		return NoTrend
	case c.Percent > 0:
		return Up
	case c.Percent < 0:
		return Down
	default:
		return Flat
	}
}

type historyEntry struct {
	risk   domain.Risk
	date   civil.Date
	active bool
}

// PercentChanges returns, keyed by record id, the change of every active
// record that is the latest active record of its name and has a predecessor.
// Active and archived records are merged per trimmed name and ordered by
// DateAdded; equal dates keep registry order followed by archive order.
// Records with a blank name or no date take no part.
func PercentChanges(active []domain.Risk, archived []domain.ArchivedRisk) map[string]Change {
	byName := make(map[string][]historyEntry)
	push := func(r domain.Risk, isActive bool) {
		name := strings.TrimSpace(r.Name)
		if name == "" || !r.HasDate() {
			return
		}
		byName[name] = append(byName[name], historyEntry{risk: r, date: r.DateAdded, active: isActive})
	}
	for _, r := range active {
		push(r, true)
	}
	for _, a := range archived {
		push(a.Risk, false)
	}

	out := make(map[string]Change)
	for name, list := range byName {
		sort.SliceStable(list, func(i, j int) bool { return list[i].date.Before(list[j].date) })
		latest := -1
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].active {
				latest = i
				break
			}
		}
		if latest <= 0 {
			continue
		}
		cur, prev := list[latest], list[latest-1]
		c := Change{
			RecordID:         cur.risk.ID,
			Name:             name,
			Previous:         prev.risk.TotalImpact,
			Current:          cur.risk.TotalImpact,
			PreviousArchived: !prev.active,
		}
		if prev.risk.TotalImpact != 0 {
			c.Defined = true
			c.Percent = (cur.risk.TotalImpact - prev.risk.TotalImpact) / prev.risk.TotalImpact * 100
		}
		out[cur.risk.ID] = c
	}
	return out
}
