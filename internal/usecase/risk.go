package usecase

import (
	"moneymitra/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	highRiskBelow   = decimal.RequireFromString("0.1")
	mediumRiskBelow = decimal.RequireFromString("0.3")
)

// AssessRisk classifies savings / monthly expenses. Missing, non-numeric or
// zero expenses give RiskUnknown.
func AssessRisk(savings, monthlyExpenses entity.Text) entity.RiskLevel {
	s, ok := parseAmount(savings)
	if !ok {
		return entity.RiskUnknown
	}
	e, ok := parseAmount(monthlyExpenses)
	if !ok || e.IsZero() {
		return entity.RiskUnknown
	}

	ratio := s.Div(e)
	switch {
	case ratio.LessThan(highRiskBelow):
		return entity.RiskHigh
	case ratio.LessThan(mediumRiskBelow):
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}
