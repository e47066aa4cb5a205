package memory

import (
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
)

// InventoryRepository provides in-memory internal inventory storage, one record per part
type InventoryRepository struct {
	records    []entities.InternalInventory
	recordsMap map[entities.PartID]int
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		records:    []entities.InternalInventory{},
		recordsMap: make(map[entities.PartID]int),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadInventory validates and appends inventory records
func (r *InventoryRepository) LoadInventory(records []*entities.InternalInventory) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		if _, exists := r.recordsMap[rec.PartID]; exists {
			return entities.InvalidInputf("duplicate inventory record for part: %s", rec.PartID)
		}
		r.AddInventory(*rec)
	}
	return nil
}

// AddInventory appends a record without validation
func (r *InventoryRepository) AddInventory(rec entities.InternalInventory) {
	r.recordsMap[rec.PartID] = len(r.records)
	r.records = append(r.records, rec)
}

// GetInventory returns the inventory record of a part, if any
func (r *InventoryRepository) GetInventory(partID entities.PartID) (*entities.InternalInventory, bool) {
	index, exists := r.recordsMap[partID]
	if !exists {
		return nil, false
	}
	rec := r.records[index]
	return &rec, true
}

// GetAllInventory returns all records in load order
func (r *InventoryRepository) GetAllInventory() ([]*entities.InternalInventory, error) {
	records := make([]*entities.InternalInventory, 0, len(r.records))
	for i := range r.records {
		rec := r.records[i]
		records = append(records, &rec)
	}
	return records, nil
}
