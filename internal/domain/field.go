package domain

import "strings"

// Field names an editable Risk attribute.
type Field int

const (
	FieldUnknown Field = iota
	FieldName
	FieldTotalImpact
	FieldLikelihood
	FieldResponsible
	FieldImpactYears
	FieldCalculationBasis
	FieldUpdates
	FieldDateAdded
)

var fieldNames = map[Field]string{
	FieldName:             "riskName",
	FieldTotalImpact:      "totalImpact",
	FieldLikelihood:       "likelihood",
	FieldResponsible:      "responsible",
	FieldImpactYears:      "impactYears",
	FieldCalculationBasis: "calculationBasis",
	FieldUpdates:          "updates",
	FieldDateAdded:        "dateAdded",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseField maps a field name (case-insensitive, "name" accepted for
// riskName) to a Field.
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "name" {
		return FieldName, true
	}
	for f, n := range fieldNames {
		if strings.ToLower(n) == s {
			return f, true
		}
	}
	return FieldUnknown, false
}

// Numeric reports whether edits to f are coerced to numbers.
func (f Field) Numeric() bool {
	return f == FieldTotalImpact || f == FieldLikelihood
}
