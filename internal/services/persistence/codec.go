package persistence

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/wspwll/risk-radar/internal/domain"
)

// number accepts JSON numbers and numeric strings; anything else decodes
// to 0.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			*n = 0
			return nil
		}
		v, _ := domain.ParseNumber(s)
		*n = number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*n = 0
		return nil
	}
	*n = number(v)
	return nil
}

type riskDoc struct {
	ID               string `json:"id"`
	RiskName         string `json:"riskName"`
	TotalImpact      number `json:"totalImpact"`
	Likelihood       number `json:"likelihood"`
	Responsible      string `json:"responsible"`
	ImpactYears      string `json:"impactYears"`
	CalculationBasis string `json:"calculationBasis"`
	Updates          string `json:"updates"`
	DateAdded        string `json:"dateAdded"`
}

type archivedDoc struct {
	riskDoc
	Archived   bool      `json:"__archived"`
	ArchivedAt time.Time `json:"archivedAt"`
}

type snapshotDoc struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	Rows      []riskDoc  `json:"rows"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	RenamedAt *time.Time `json:"renamedAt,omitempty"`
}

func toRiskDoc(r domain.Risk) riskDoc {
	return riskDoc{
		ID:               r.ID,
		RiskName:         r.Name,
		TotalImpact:      number(r.TotalImpact),
		Likelihood:       number(r.Likelihood),
		Responsible:      r.Responsible,
		ImpactYears:      r.ImpactYears,
		CalculationBasis: r.CalculationBasis,
		Updates:          r.Updates,
		DateAdded:        domain.FormatDate(r.DateAdded),
	}
}

func (d riskDoc) toDomain() domain.Risk {
	r := domain.Risk{
		ID:               d.ID,
		Name:             d.RiskName,
		TotalImpact:      float64(d.TotalImpact),
		Likelihood:       float64(d.Likelihood),
		Responsible:      d.Responsible,
		ImpactYears:      d.ImpactYears,
		CalculationBasis: d.CalculationBasis,
		Updates:          d.Updates,
	}
	if date, ok := domain.ParseDate(strings.TrimSpace(d.DateAdded)); ok {
		r.DateAdded = date
	}
	return r
}

func encodeSnapshots(snaps []domain.Snapshot) ([]byte, error) {
	docs := make([]snapshotDoc, len(snaps))
	for i, s := range snaps {
		rows := make([]riskDoc, len(s.Rows))
		for j, r := range s.Rows {
			rows[j] = toRiskDoc(r)
		}
		docs[i] = snapshotDoc{
			ID:        s.ID,
			Name:      s.Name,
			CreatedAt: s.CreatedAt,
			Rows:      rows,
			UpdatedAt: s.UpdatedAt,
			RenamedAt: s.RenamedAt,
		}
	}
	return json.Marshal(docs)
}

func decodeSnapshots(b []byte) ([]domain.Snapshot, error) {
	var docs []snapshotDoc
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Snapshot, len(docs))
	for i, d := range docs {
		rows := make([]domain.Risk, len(d.Rows))
		for j, r := range d.Rows {
			rows[j] = r.toDomain()
		}
		out[i] = domain.Snapshot{
			ID:        d.ID,
			Name:      d.Name,
			CreatedAt: d.CreatedAt,
			Rows:      rows,
			UpdatedAt: d.UpdatedAt,
			RenamedAt: d.RenamedAt,
		}
	}
	return out, nil
}

func encodeArchive(items []domain.ArchivedRisk) ([]byte, error) {
	docs := make([]archivedDoc, len(items))
	for i, a := range items {
		docs[i] = archivedDoc{riskDoc: toRiskDoc(a.Risk), Archived: true, ArchivedAt: a.ArchivedAt}
	}
	return json.Marshal(docs)
}

func decodeArchive(b []byte) ([]domain.ArchivedRisk, error) {
	var docs []archivedDoc
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.ArchivedRisk, len(docs))
	for i, d := range docs {
		out[i] = domain.ArchivedRisk{Risk: d.riskDoc.toDomain(), ArchivedAt: d.ArchivedAt}
	}
	return out, nil
}
