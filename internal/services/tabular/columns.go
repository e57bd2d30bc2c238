// Package tabular maps between generic spreadsheet rows and risk records.
package tabular

const (
	ColRiskName         = "Risk Name"
	ColTotalImpact      = "Total Impact"
	ColLikelihood       = "Likelihood"
	ColRiskByLikelihood = "Risk by Likelihood"
	ColResponsible      = "Responsible"
	ColImpactYears      = "Impact Years"
	ColCalculationBasis = "Calculation Basis"
	ColUpdates          = "Updates"
	ColDateAdded        = "Date Added"
)

// Number format hints attached to exported columns.
const (
	FormatCurrency = "$#,##0"
	FormatPercent  = "0.0"
	FormatInteger  = "#,##0"
)

// Column is one exported column: its header, a number format hint (empty
// for text) and a suggested display width in characters.
type Column struct {
	Header string
	Format string
	Width  float64
}

// ExportColumns is the fixed export layout.
var ExportColumns = []Column{
	{Header: ColRiskName, Width: 28},
	{Header: ColTotalImpact, Format: FormatCurrency, Width: 14},
	{Header: ColLikelihood, Format: FormatPercent, Width: 12},
	{Header: ColRiskByLikelihood, Format: FormatInteger, Width: 18},
	{Header: ColResponsible, Width: 16},
	{Header: ColImpactYears, Width: 14},
	{Header: ColCalculationBasis, Width: 22},
	{Header: ColUpdates, Width: 28},
	{Header: ColDateAdded, Width: 12},
}

// importColumns are recognized on import, keyed by lower-cased header.
var importColumns = map[string]string{
	"risk name":         ColRiskName,
	"total impact":      ColTotalImpact,
	"likelihood":        ColLikelihood,
	"responsible":       ColResponsible,
	"impact years":      ColImpactYears,
	"calculation basis": ColCalculationBasis,
	"updates":           ColUpdates,
	"date added":        ColDateAdded,
}

// exported only, ignored silently on import
var derivedColumns = map[string]bool{
	"risk by likelihood": true,
}
