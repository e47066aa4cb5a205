package entities

import "math"

// ScenarioDelta is a caller-supplied what-if adjustment. The zero value is the baseline.
type ScenarioDelta struct {
	ForecastChange  float64 `json:"forecastChange" yaml:"forecast_change"`   // percent
	InventoryChange float64 `json:"inventoryChange" yaml:"inventory_change"` // percent, scales coverage
	PriceChange     float64 `json:"priceChange" yaml:"price_change"`         // percent, added to risk
	LeadTimeChange  float64 `json:"leadTimeChange" yaml:"lead_time_change"`  // weeks, added to risk twice
}

// Validate rejects non-finite adjustments before they reach the decision rules
func (s *ScenarioDelta) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"forecastChange", s.ForecastChange},
		{"inventoryChange", s.InventoryChange},
		{"priceChange", s.PriceChange},
		{"leadTimeChange", s.LeadTimeChange},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return InvalidInputf("scenario %s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}

// IsZero reports whether every adjustment is zero
func (s *ScenarioDelta) IsZero() bool {
	return s == nil || *s == ScenarioDelta{}
}
