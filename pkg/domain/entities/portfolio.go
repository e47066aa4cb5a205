package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// KPIData is a portfolio snapshot recomputed on demand from the full catalog
type KPIData struct {
	SupplyRiskIndex        int             `json:"supplyRiskIndex" yaml:"supply_risk_index"`
	DemandPressureIndex    int             `json:"demandPressureIndex" yaml:"demand_pressure_index"`
	InventoryCoverageWeeks float64         `json:"inventoryCoverageWeeks" yaml:"inventory_coverage_weeks"`
	CashExposure           decimal.Decimal `json:"cashExposure" yaml:"cash_exposure"`
	CostAvoidancePotential decimal.Decimal `json:"costAvoidancePotential" yaml:"cost_avoidance_potential"`
}

// TrendPoint is one sample of a time-ordered series
type TrendPoint struct {
	Week  string  `json:"week" yaml:"week"`
	Value float64 `json:"value" yaml:"value"`
}

// Severity grades a regional supply constraint
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String method for Severity enum
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseSeverity parses low / medium / high
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return SeverityLow, InvalidInputf("unknown severity %q", s)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RegionalConstraint is the supply pressure observed in one region
type RegionalConstraint struct {
	Region   string   `json:"region" yaml:"region"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// MarketPulse summarises market movement across the portfolio
type MarketPulse struct {
	LeadTimeTrend       []TrendPoint         `json:"leadTimeTrend" yaml:"lead_time_trend"`
	PricingTrend        []TrendPoint         `json:"pricingTrend" yaml:"pricing_trend"`
	EOLRiskCount        int                  `json:"eolRiskCount" yaml:"eol_risk_count"`
	RegionalConstraints []RegionalConstraint `json:"regionalConstraints" yaml:"regional_constraints"`
}
