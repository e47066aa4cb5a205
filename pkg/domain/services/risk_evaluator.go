package services

import (
	"math"

	"github.com/vsinha/procure/pkg/domain/entities"
)

const (
	// FallbackCoverageWeeks is the coverage assumed for parts with no inventory record or a zero reading
	FallbackCoverageWeeks = 10.0

	// LeadTimeRiskWeight is the risk added per week of lead-time change
	LeadTimeRiskWeight = 2.0
)

// Evaluation is the scenario-adjusted state of a part.
// Values are unclamped; use DisplayRisk before showing risk to a user.
type Evaluation struct {
	EffectiveRisk     float64
	EffectiveCoverage float64
}

// Evaluate computes effective risk and coverage for a part.
// inventory and scenario may be nil; a nil scenario is the baseline.
func Evaluate(part *entities.Part, inventory *entities.InternalInventory, scenario *entities.ScenarioDelta) Evaluation {
	var delta entities.ScenarioDelta
	if scenario != nil {
		delta = *scenario
	}

	risk := float64(part.RiskScore) + LeadTimeRiskWeight*delta.LeadTimeChange + delta.PriceChange

	coverage := CoverageWeeks(inventory) * (1 + delta.InventoryChange/100)

	return Evaluation{
		EffectiveRisk:     risk,
		EffectiveCoverage: coverage,
	}
}

// CoverageWeeks returns the recorded coverage, or the fallback when there is
// no inventory record or the record reports zero weeks.
func CoverageWeeks(inventory *entities.InternalInventory) float64 {
	if inventory == nil || inventory.CoverageWeeks == 0 {
		return FallbackCoverageWeeks
	}
	return inventory.CoverageWeeks
}

// DisplayRisk clamps a risk value to the [0,100] score range
func DisplayRisk(risk float64) int {
	return int(math.Round(math.Max(0, math.Min(100, risk))))
}
