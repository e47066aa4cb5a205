package memory

import (
	"github.com/vsinha/procure/pkg/domain/entities"
	"github.com/vsinha/procure/pkg/domain/repositories"
)

// PartRepository provides in-memory part storage in catalog order.
// Load it once, then share it freely between readers.
type PartRepository struct {
	parts    []entities.Part
	partsMap map[entities.PartID]int
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository(expectedParts int) *PartRepository {
	return &PartRepository{
		parts:    make([]entities.Part, 0, expectedParts),
		partsMap: make(map[entities.PartID]int, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// LoadParts validates and appends parts, rejecting duplicate ids
func (r *PartRepository) LoadParts(parts []*entities.Part) error {
	for _, part := range parts {
		if err := part.Validate(); err != nil {
			return err
		}
		if _, exists := r.partsMap[part.ID]; exists {
			return entities.InvalidInputf("duplicate part id: %s", part.ID)
		}
		r.AddPart(*part)
	}
	return nil
}

// AddPart appends a part without validation
func (r *PartRepository) AddPart(part entities.Part) {
	r.partsMap[part.ID] = len(r.parts)
	r.parts = append(r.parts, part)
}

// GetPart returns the part with the given id
func (r *PartRepository) GetPart(id entities.PartID) (*entities.Part, error) {
	index, exists := r.partsMap[id]
	if !exists {
		return nil, entities.NotFoundf("part not found: %s", id)
	}
	part := r.parts[index]
	return &part, nil
}

// GetAllParts returns all parts in catalog order
func (r *PartRepository) GetAllParts() ([]*entities.Part, error) {
	parts := make([]*entities.Part, 0, len(r.parts))
	for i := range r.parts {
		part := r.parts[i]
		parts = append(parts, &part)
	}
	return parts, nil
}

// Len returns the number of parts
func (r *PartRepository) Len() int {
	return len(r.parts)
}
