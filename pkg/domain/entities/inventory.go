package entities

// InternalInventory is the on-hand stock record for one part. A part may have none.
type InternalInventory struct {
	PartID        PartID  `json:"partId" yaml:"part_id"`
	Quantity      int64   `json:"quantity" yaml:"quantity"`
	Location      string  `json:"location" yaml:"location"`
	SafetyStock   int64   `json:"safetyStock" yaml:"safety_stock"`
	CoverageWeeks float64 `json:"coverageWeeks" yaml:"coverage_weeks"`
}

// NewInternalInventory creates a validated InternalInventory record
func NewInternalInventory(partID PartID, quantity int64, location string, safetyStock int64, coverageWeeks float64) (*InternalInventory, error) {
	inv := &InternalInventory{
		PartID:        partID,
		Quantity:      quantity,
		Location:      location,
		SafetyStock:   safetyStock,
		CoverageWeeks: coverageWeeks,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// Validate checks the invariants of an inventory record
func (i *InternalInventory) Validate() error {
	if i.PartID == "" {
		return InvalidInputf("part id cannot be empty")
	}
	if i.Quantity < 0 {
		return InvalidInputf("quantity cannot be negative, got %d", i.Quantity)
	}
	if i.SafetyStock < 0 {
		return InvalidInputf("safety stock cannot be negative, got %d", i.SafetyStock)
	}
	if i.CoverageWeeks < 0 {
		return InvalidInputf("coverage weeks cannot be negative, got %g", i.CoverageWeeks)
	}
	return nil
}

// BelowSafetyStock reports whether on-hand quantity has dropped under the safety level
func (i *InternalInventory) BelowSafetyStock() bool {
	return i.Quantity < i.SafetyStock
}
