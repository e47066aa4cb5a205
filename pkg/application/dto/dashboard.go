package dto

import (
	"time"

	"github.com/vsinha/procure/pkg/domain/entities"
)

// DashboardSnapshot contains the complete output of a portfolio dashboard run
type DashboardSnapshot struct {
	KPIs        entities.KPIData     `json:"kpis" yaml:"kpis"`
	MarketPulse entities.MarketPulse `json:"marketPulse" yaml:"market_pulse"`
	Watchlist   []*entities.Part     `json:"watchlist" yaml:"watchlist"`
	GeneratedAt time.Time            `json:"generatedAt" yaml:"generated_at"`
}

// PartInsight is one part with its current risk assessment
type PartInsight struct {
	Part        *entities.Part              `json:"part" yaml:"part"`
	Inventory   *entities.InternalInventory `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Forecast    *entities.Forecast          `json:"forecast,omitempty" yaml:"forecast,omitempty"`
	RiskBand    entities.Severity           `json:"riskBand" yaml:"risk_band"`
	RiskFactors []string                    `json:"riskFactors" yaml:"risk_factors"`
}

// PartsReport is the result of a catalog query
type PartsReport struct {
	Parts  []PartInsight `json:"parts" yaml:"parts"`
	High   int           `json:"high" yaml:"high"`
	Medium int           `json:"medium" yaml:"medium"`
	Low    int           `json:"low" yaml:"low"`
}
