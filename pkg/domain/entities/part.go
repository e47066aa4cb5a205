package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PartID is the catalog identity of a part
type PartID string

// Lifecycle is the manufacturer-declared status of a part
type Lifecycle int

const (
	Active Lifecycle = iota
	NRND
	EOL
	Obsolete
)

// String method for Lifecycle enum
func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "Active"
	case NRND:
		return "NRND"
	case EOL:
		return "EOL"
	case Obsolete:
		return "Obsolete"
	default:
		return "Unknown"
	}
}

// IsEndOfLife reports whether the part is past the point of reliable supply
func (l Lifecycle) IsEndOfLife() bool {
	return l == EOL || l == Obsolete
}

// ParseLifecycle parses the catalog spelling of a lifecycle status
func ParseLifecycle(s string) (Lifecycle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTIVE":
		return Active, nil
	case "NRND":
		return NRND, nil
	case "EOL":
		return EOL, nil
	case "OBSOLETE":
		return Obsolete, nil
	default:
		return Active, InvalidInputf("unknown lifecycle %q", s)
	}
}

func (l Lifecycle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Lifecycle) UnmarshalText(text []byte) error {
	v, err := ParseLifecycle(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Trend is the direction of a market signal
type Trend int

const (
	Stable Trend = iota
	Increasing
	Decreasing
)

// String method for Trend enum
func (t Trend) String() string {
	switch t {
	case Stable:
		return "stable"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// ParseTrend parses increasing / stable / decreasing
func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stable":
		return Stable, nil
	case "increasing":
		return Increasing, nil
	case "decreasing":
		return Decreasing, nil
	default:
		return Stable, InvalidInputf("unknown trend %q", s)
	}
}

func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Trend) UnmarshalText(text []byte) error {
	v, err := ParseTrend(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Part is immutable reference data owned by the external catalog
type Part struct {
	ID              PartID          `json:"id" yaml:"id"`
	MPN             string          `json:"mpn" yaml:"mpn"`
	Description     string          `json:"description" yaml:"description"`
	Manufacturer    string          `json:"manufacturer" yaml:"manufacturer"`
	Category        string          `json:"category" yaml:"category"`
	Lifecycle       Lifecycle       `json:"lifecycle" yaml:"lifecycle"`
	LeadTimeWeeks   int             `json:"leadTime" yaml:"lead_time"`
	LeadTimeTrend   Trend           `json:"leadTimeTrend" yaml:"lead_time_trend"`
	PriceUSD        decimal.Decimal `json:"priceUsd" yaml:"price_usd"`
	PriceTrend      Trend           `json:"priceTrend" yaml:"price_trend"`
	InventoryGlobal int64           `json:"inventoryGlobal" yaml:"inventory_global"`
	RiskScore       int             `json:"riskScore" yaml:"risk_score"`
}

// NewPart creates a validated Part
func NewPart(
	id PartID,
	mpn, description, manufacturer, category string,
	lifecycle Lifecycle,
	leadTimeWeeks int,
	leadTimeTrend Trend,
	priceUSD decimal.Decimal,
	priceTrend Trend,
	inventoryGlobal int64,
	riskScore int,
) (*Part, error) {
	p := &Part{
		ID:              id,
		MPN:             mpn,
		Description:     description,
		Manufacturer:    manufacturer,
		Category:        category,
		Lifecycle:       lifecycle,
		LeadTimeWeeks:   leadTimeWeeks,
		LeadTimeTrend:   leadTimeTrend,
		PriceUSD:        priceUSD,
		PriceTrend:      priceTrend,
		InventoryGlobal: inventoryGlobal,
		RiskScore:       riskScore,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the catalog invariants of a part
func (p *Part) Validate() error {
	if p.ID == "" {
		return InvalidInputf("part id cannot be empty")
	}
	if p.MPN == "" {
		return InvalidInputf("mpn cannot be empty")
	}
	if p.LeadTimeWeeks <= 0 {
		return InvalidInputf("lead time must be positive, got %d", p.LeadTimeWeeks)
	}
	if !p.PriceUSD.IsPositive() {
		return InvalidInputf("price must be positive, got %s", p.PriceUSD.String())
	}
	if p.InventoryGlobal < 0 {
		return InvalidInputf("global inventory cannot be negative, got %d", p.InventoryGlobal)
	}
	if p.RiskScore < 0 || p.RiskScore > 100 {
		return InvalidInputf("risk score must be within [0,100], got %d", p.RiskScore)
	}
	return nil
}

func (p Part) String() string {
	return fmt.Sprintf("%s (%s)", p.ID, p.MPN)
}
