package tabular

import (
	"math"

	"github.com/wspwll/risk-radar/internal/domain"
)

// Table is an export ready for a spreadsheet writer. Each row holds one
// value per entry of Columns: strings for text, float64 for impact and
// likelihood, int64 for the rounded exposure.
type Table struct {
	Columns []Column
	Rows    [][]any
}

func Encode(rows []domain.Risk) Table {
	t := Table{
		Columns: append([]Column(nil), ExportColumns...),
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Name,
			r.TotalImpact,
			r.Likelihood,
			int64(math.Round(r.WeightedExposure())),
			r.Responsible,
			r.ImpactYears,
			r.CalculationBasis,
			r.Updates,
			domain.FormatDate(r.DateAdded),
		})
	}
	return t
}
