package services

import "github.com/vsinha/procure/pkg/domain/entities"

// Risk band thresholds shared by dashboards and the EOL-risk predicate
const (
	HighRiskThreshold   = 70
	MediumRiskThreshold = 40

	// LowCoverageWeeks marks inventory that will run out before a typical reorder lands
	LowCoverageWeeks = 8.0
)

// RiskBand grades a risk score
func RiskBand(score int) entities.Severity {
	switch {
	case score >= HighRiskThreshold:
		return entities.SeverityHigh
	case score >= MediumRiskThreshold:
		return entities.SeverityMedium
	default:
		return entities.SeverityLow
	}
}

// RiskFactors lists the observable conditions behind a part's risk, in display order
func RiskFactors(part *entities.Part, inventory *entities.InternalInventory) []string {
	factors := make([]string, 0, 4)
	if part.Lifecycle != entities.Active {
		factors = append(factors, "Non-active lifecycle status")
	}
	if part.LeadTimeTrend == entities.Increasing {
		factors = append(factors, "Lead times extending")
	}
	if part.PriceTrend == entities.Increasing {
		factors = append(factors, "Price trending upward")
	}
	if inventory != nil && inventory.CoverageWeeks < LowCoverageWeeks {
		factors = append(factors, "Low inventory coverage")
	}
	return factors
}
