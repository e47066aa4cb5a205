package entities

// Forecast is the expected weekly demand for a part over a planning horizon
type Forecast struct {
	PartID       PartID  `json:"partId" yaml:"part_id"`
	WeeklyDemand float64 `json:"weeklyDemand" yaml:"weekly_demand"`
	HorizonWeeks int     `json:"horizon" yaml:"horizon"`
}

// NewForecast creates a validated Forecast
func NewForecast(partID PartID, weeklyDemand float64, horizonWeeks int) (*Forecast, error) {
	f := &Forecast{PartID: partID, WeeklyDemand: weeklyDemand, HorizonWeeks: horizonWeeks}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the invariants of a forecast
func (f *Forecast) Validate() error {
	if f.PartID == "" {
		return InvalidInputf("part id cannot be empty")
	}
	if f.WeeklyDemand < 0 {
		return InvalidInputf("weekly demand cannot be negative, got %g", f.WeeklyDemand)
	}
	if f.HorizonWeeks <= 0 {
		return InvalidInputf("horizon must be positive, got %d", f.HorizonWeeks)
	}
	return nil
}

// HorizonDemand is the total demand expected over the horizon
func (f *Forecast) HorizonDemand() float64 {
	return f.WeeklyDemand * float64(f.HorizonWeeks)
}
