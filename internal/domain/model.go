package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Core value types. Persistence and tabular adapters map to and from these;
// keep them free of encoding concerns.

// Risk is one entry of the registry.
type Risk struct {
	ID               string
	Name             string
	TotalImpact      float64
	Likelihood       float64 // percentage, nominally 0..100
	Responsible      string
	ImpactYears      string
	CalculationBasis string
	Updates          string
	DateAdded        civil.Date
}

// Clone returns an independent copy of r. Copies between collections go
// through Clone.
func (r Risk) Clone() Risk {
	return r
}

// WeightedExposure is TotalImpact scaled by Likelihood percent.
func (r Risk) WeightedExposure() float64 {
	return r.TotalImpact * (r.Likelihood / 100)
}

// HasDate reports whether DateAdded holds a real calendar date.
func (r Risk) HasDate() bool {
	return r.DateAdded.IsValid()
}

// ArchivedRisk is a record evicted from the registry. Never mutated.
type ArchivedRisk struct {
	Risk
	ArchivedAt time.Time
}

// Clone returns an independent copy of a.
func (a ArchivedRisk) Clone() ArchivedRisk {
	return ArchivedRisk{Risk: a.Risk.Clone(), ArchivedAt: a.ArchivedAt}
}

// Snapshot is a named capture of the registry rows.
type Snapshot struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Rows      []Risk
	UpdatedAt *time.Time
	RenamedAt *time.Time
}

// Clone deep-copies s, including its rows and optional timestamps.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Rows = CloneRisks(s.Rows)
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		out.UpdatedAt = &t
	}
	if s.RenamedAt != nil {
		t := *s.RenamedAt
		out.RenamedAt = &t
	}
	return out
}

// CloneRisks deep-copies a record sequence. A nil input yields an empty,
// non-nil slice.
func CloneRisks(in []Risk) []Risk {
	out := make([]Risk, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

// CloneArchived deep-copies an archive sequence.
func CloneArchived(in []ArchivedRisk) []ArchivedRisk {
	out := make([]ArchivedRisk, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}
