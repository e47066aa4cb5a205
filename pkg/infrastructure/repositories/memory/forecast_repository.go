package memory

import (
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
)

// ForecastRepository provides in-memory forecast storage, one forecast per part
type ForecastRepository struct {
	forecasts    []entities.Forecast
	forecastsMap map[entities.PartID]int
}

// NewForecastRepository creates a new in-memory forecast repository
func NewForecastRepository() *ForecastRepository {
	return &ForecastRepository{
		forecasts:    []entities.Forecast{},
		forecastsMap: make(map[entities.PartID]int),
	}
}

// Verify interface compliance
var _ repositories.ForecastRepository = (*ForecastRepository)(nil)

// LoadForecasts validates and appends forecasts
func (r *ForecastRepository) LoadForecasts(forecasts []*entities.Forecast) error {
	for _, f := range forecasts {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, exists := r.forecastsMap[f.PartID]; exists {
			return entities.InvalidInputf("duplicate forecast for part: %s", f.PartID)
		}
		r.AddForecast(*f)
	}
	return nil
}

// AddForecast appends a forecast without validation
func (r *ForecastRepository) AddForecast(f entities.Forecast) {
	r.forecastsMap[f.PartID] = len(r.forecasts)
	r.forecasts = append(r.forecasts, f)
}

// GetForecast returns the forecast of a part, if any
func (r *ForecastRepository) GetForecast(partID entities.PartID) (*entities.Forecast, bool) {
	index, exists := r.forecastsMap[partID]
	if !exists {
		return nil, false
	}
	f := r.forecasts[index]
	return &f, true
}

// GetAllForecasts returns all forecasts in load order
func (r *ForecastRepository) GetAllForecasts() ([]*entities.Forecast, error) {
	forecasts := make([]*entities.Forecast, 0, len(r.forecasts))
	for i := range r.forecasts {
		f := r.forecasts[i]
		forecasts = append(forecasts, &f)
	}
	return forecasts, nil
}
