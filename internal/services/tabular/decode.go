package tabular

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/wspwll/risk-radar/internal/domain"
)

type DiagnosticKind int

const (
	UnrecognizedColumn DiagnosticKind = iota + 1
	InvalidNumber
	InvalidDate
	DroppedEmptyRow
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnrecognizedColumn:
		return "unrecognized column"
	case InvalidNumber:
		return "invalid number"
	case InvalidDate:
		return "invalid date"
	case DroppedEmptyRow:
		return "empty row dropped"
	}
	return "unknown"
}

// Diagnostic describes a non-fatal problem found while decoding. Row is the
// zero-based index into the input.
type Diagnostic struct {
	Row    int
	Column string
	Value  string
	Kind   DiagnosticKind
}

func (d Diagnostic) String() string {
	if d.Column == "" {
		return fmt.Sprintf("row %d: %s", d.Row, d.Kind)
	}
	return fmt.Sprintf("row %d, column %q: %s %q", d.Row, d.Column, d.Kind, d.Value)
}

// Decoder turns rows into records. Zero values are usable: ids come from
// uuid and missing dates default to the current day.
type Decoder struct {
	NewID func() string
	Today civil.Date
}

// Decode maps each row to a record. Rows without a name, responsible,
// impact or likelihood are dropped. Problems are collected, never returned
// as errors.
func (dec Decoder) Decode(rows []map[string]string) ([]domain.Risk, []Diagnostic) {
	newID := dec.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	today := dec.Today
	if !today.IsValid() {
		today = civil.DateOf(time.Now())
	}

	var (
		out   []domain.Risk
		diags []Diagnostic
	)
	for i, raw := range rows {
		idx, unknown := indexRow(raw)
		for _, col := range unknown {
			diags = append(diags, Diagnostic{Row: i, Column: col, Kind: UnrecognizedColumn})
		}
		get := func(col string) string { return strings.TrimSpace(idx[col]) }
		number := func(col string) float64 {
			s := get(col)
			v, ok := domain.ParseNumber(s)
			if !ok && s != "" {
				diags = append(diags, Diagnostic{Row: i, Column: col, Value: s, Kind: InvalidNumber})
			}
			return v
		}

		r := domain.Risk{
			ID:               newID(),
			Name:             get(ColRiskName),
			TotalImpact:      number(ColTotalImpact),
			Likelihood:       number(ColLikelihood),
			Responsible:      get(ColResponsible),
			ImpactYears:      get(ColImpactYears),
			CalculationBasis: get(ColCalculationBasis),
			Updates:          get(ColUpdates),
			DateAdded:        today,
		}
		if s := get(ColDateAdded); s != "" {
			if d, ok := parseCellDate(s); ok {
				r.DateAdded = d
			} else {
				diags = append(diags, Diagnostic{Row: i, Column: ColDateAdded, Value: s, Kind: InvalidDate})
			}
		}

		if r.Name == "" && r.Responsible == "" && r.TotalImpact == 0 && r.Likelihood == 0 {
			diags = append(diags, Diagnostic{Row: i, Kind: DroppedEmptyRow})
			continue
		}
		out = append(out, r)
	}
	return out, diags
}

// indexRow builds the case-insensitive lookup for one row. Headers are
// visited in sorted order so the first spelling of a duplicated header wins.
func indexRow(raw map[string]string) (map[string]string, []string) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	idx := make(map[string]string, len(keys))
	var unknown []string
	for _, k := range keys {
		norm := strings.ToLower(strings.TrimSpace(k))
		col, ok := importColumns[norm]
		if !ok {
			if !derivedColumns[norm] && norm != "" {
				unknown = append(unknown, k)
			}
			continue
		}
		if _, seen := idx[col]; !seen {
			idx[col] = raw[k]
		}
	}
	return idx, unknown
}

// parseCellDate accepts calendar strings and, since workbook date cells are
// read raw, spreadsheet serial day numbers.
func parseCellDate(s string) (civil.Date, bool) {
	if d, ok := domain.ParseDate(s); ok {
		return d, true
	}
	return domain.ParseSerialDate(s)
}
