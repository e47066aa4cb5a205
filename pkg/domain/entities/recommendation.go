package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action is the closed set of procurement actions
type Action int

const (
	Wait Action = iota
	BuyNow
	Resource
)

// String method for Action enum
func (a Action) String() string {
	switch a {
	case Wait:
		return "Wait"
	case BuyNow:
		return "Buy Now"
	case Resource:
		return "Re-source"
	default:
		return "Unknown"
	}
}

// ParseAction parses the display spelling of an action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wait":
		return Wait, nil
	case "buy now", "buynow", "buy":
		return BuyNow, nil
	case "re-source", "resource":
		return Resource, nil
	default:
		return Wait, InvalidInputf("unknown action %q", s)
	}
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	v, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// FinancialImpact estimates the value of acting on a recommendation.
// RiskDelta is negative when risk is reduced.
type FinancialImpact struct {
	Savings   decimal.Decimal `json:"savings" yaml:"savings"`
	RiskDelta int             `json:"riskDelta" yaml:"risk_delta"`
}

// Recommendation is created fresh per evaluation and never mutated afterwards
type Recommendation struct {
	ID              string          `json:"id" yaml:"id"`
	PartID          PartID          `json:"partId" yaml:"part_id"`
	Action          Action          `json:"action" yaml:"action"`
	Confidence      int             `json:"confidence" yaml:"confidence"`
	Explanation     string          `json:"explanation" yaml:"explanation"`
	Drivers         []string        `json:"drivers" yaml:"drivers"`
	Tradeoffs       []string        `json:"tradeoffs" yaml:"tradeoffs"`
	FinancialImpact FinancialImpact `json:"financialImpact" yaml:"financial_impact"`
	Timestamp       time.Time       `json:"timestamp" yaml:"timestamp"`
}

// DisplayDriverLimit is how many drivers a summary card shows
const DisplayDriverLimit = 3

// DisplayDrivers returns the leading drivers shown on summary cards
func (r *Recommendation) DisplayDrivers() []string {
	if len(r.Drivers) <= DisplayDriverLimit {
		return r.Drivers
	}
	return r.Drivers[:DisplayDriverLimit:DisplayDriverLimit]
}
