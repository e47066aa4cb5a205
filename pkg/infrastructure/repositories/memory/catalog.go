package memory

import (
	"fmt"

	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
)

// Catalog bundles the three in-memory repositories into one read-only dataset
type Catalog struct {
	*PartRepository
	*InventoryRepository
	*ForecastRepository
}

// Verify interface compliance
var _ repositories.Catalog = (*Catalog)(nil)

// NewCatalog creates an empty catalog sized for the expected number of parts
func NewCatalog(expectedParts int) *Catalog {
	return &Catalog{
		PartRepository:      NewPartRepository(expectedParts),
		InventoryRepository: NewInventoryRepository(),
		ForecastRepository:  NewForecastRepository(),
	}
}

// LoadCatalog builds a catalog from the three collections
func LoadCatalog(
	parts []*entities.Part,
	inventory []*entities.InternalInventory,
	forecasts []*entities.Forecast,
) (*Catalog, error) {
	catalog := NewCatalog(len(parts))
	if err := catalog.LoadParts(parts); err != nil {
		return nil, fmt.Errorf("failed to load parts into catalog: %w", err)
	}
	if err := catalog.LoadInventory(inventory); err != nil {
		return nil, fmt.Errorf("failed to load inventory into catalog: %w", err)
	}
	if err := catalog.LoadForecasts(forecasts); err != nil {
		return nil, fmt.Errorf("failed to load forecasts into catalog: %w", err)
	}
	return catalog, nil
}
