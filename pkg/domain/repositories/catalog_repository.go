package repositories

import "github.com/vsinha/procure/pkg/domain/entities"

// PartRepository provides read-only access to part reference data
type PartRepository interface {
	GetPart(id entities.PartID) (*entities.Part, error)
	// GetAllParts returns parts in catalog order
	GetAllParts() ([]*entities.Part, error)
}

// InventoryRepository provides read-only access to internal inventory.
// A missing record is reported with ok=false, not an error.
type InventoryRepository interface {
	GetInventory(partID entities.PartID) (*entities.InternalInventory, bool)
	GetAllInventory() ([]*entities.InternalInventory, error)
}

// ForecastRepository provides read-only access to demand forecasts
type ForecastRepository interface {
	GetForecast(partID entities.PartID) (*entities.Forecast, bool)
	GetAllForecasts() ([]*entities.Forecast, error)
}

// Catalog is the full read-only dataset consumed by the engine.
// Implementations must be safe for concurrent readers.
type Catalog interface {
	PartRepository
	InventoryRepository
	ForecastRepository
}
