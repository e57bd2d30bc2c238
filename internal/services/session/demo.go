package session

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/wspwll/risk-radar/internal/domain"
)

// demoRows is the dataset installed when no workbook can be imported.
func demoRows(newID func() string) []domain.Risk {
	return []domain.Risk{
		{
			ID:               newID(),
			Name:             "Supply delay",
			TotalImpact:      250000,
			Likelihood:       20,
			Responsible:      "Ops",
			ImpactYears:      "2025–2026",
			CalculationBasis: "Avg 5-week delay × burn",
			Updates:          "Mitigation vendor in review",
			DateAdded:        civil.Date{Year: 2025, Month: time.January, Day: 15},
		},
		{
			ID:               newID(),
			Name:             "Security incident",
			TotalImpact:      400000,
			Likelihood:       10,
			Responsible:      "Security",
			ImpactYears:      "2025",
			CalculationBasis: "Historical incidents × recovery",
			Updates:          "Pen test scheduled",
			DateAdded:        civil.Date{Year: 2025, Month: time.February, Day: 10},
		},
	}
}
