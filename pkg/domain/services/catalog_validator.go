package services

import (
	"fmt"

	"github.com/vsinha/procure/pkg/domain/entities"
)

// CatalogValidationResult reports integrity problems in a catalog.
// Errors are fatal for loading; orphans and gaps are informational.
type CatalogValidationResult struct {
	DuplicateParts        []entities.PartID
	OrphanedInventory     []entities.PartID
	OrphanedForecasts     []entities.PartID
	PartsWithoutInventory []entities.PartID
	PartsWithoutForecast  []entities.PartID
	BelowSafetyStock      []entities.PartID
	Errors                []string
}

// Valid reports whether the catalog can be served
func (r *CatalogValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateCatalog checks field invariants and cross-collection references.
// Missing inventory or forecast records and stock under its safety level are legal and only reported.
func ValidateCatalog(
	parts []*entities.Part,
	inventory []*entities.InternalInventory,
	forecasts []*entities.Forecast,
) *CatalogValidationResult {
	result := &CatalogValidationResult{
		DuplicateParts:        make([]entities.PartID, 0),
		OrphanedInventory:     make([]entities.PartID, 0),
		OrphanedForecasts:     make([]entities.PartID, 0),
		PartsWithoutInventory: make([]entities.PartID, 0),
		PartsWithoutForecast:  make([]entities.PartID, 0),
		BelowSafetyStock:      make([]entities.PartID, 0),
		Errors:                make([]string, 0),
	}

	known := make(map[entities.PartID]bool, len(parts))
	for _, p := range parts {
		if known[p.ID] {
			result.DuplicateParts = append(result.DuplicateParts, p.ID)
			continue
		}
		known[p.ID] = true
		if err := p.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("part %s: %v", p.ID, err))
		}
	}
	if len(result.DuplicateParts) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Duplicate part ids found: %v", result.DuplicateParts))
	}

	stocked := make(map[entities.PartID]bool, len(inventory))
	for _, inv := range inventory {
		if err := inv.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("inventory %s: %v", inv.PartID, err))
		}
		if stocked[inv.PartID] {
			result.Errors = append(result.Errors, fmt.Sprintf("inventory %s: more than one record", inv.PartID))
		}
		stocked[inv.PartID] = true
		if !known[inv.PartID] {
			result.OrphanedInventory = append(result.OrphanedInventory, inv.PartID)
		} else if inv.BelowSafetyStock() {
			result.BelowSafetyStock = append(result.BelowSafetyStock, inv.PartID)
		}
	}

	forecasted := make(map[entities.PartID]bool, len(forecasts))
	for _, f := range forecasts {
		if err := f.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("forecast %s: %v", f.PartID, err))
		}
		if forecasted[f.PartID] {
			result.Errors = append(result.Errors, fmt.Sprintf("forecast %s: more than one record", f.PartID))
		}
		forecasted[f.PartID] = true
		if !known[f.PartID] {
			result.OrphanedForecasts = append(result.OrphanedForecasts, f.PartID)
		}
	}

	seen := make(map[entities.PartID]bool, len(parts))
	for _, p := range parts {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if !stocked[p.ID] {
			result.PartsWithoutInventory = append(result.PartsWithoutInventory, p.ID)
		}
		if !forecasted[p.ID] {
			result.PartsWithoutForecast = append(result.PartsWithoutForecast, p.ID)
		}
	}

	return result
}
