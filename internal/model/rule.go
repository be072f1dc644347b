package model

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ReorderRule is the per-part reordering policy, keyed 1:1 by PartID.
type ReorderRule struct {
	PartID              string
	MinStock            int64
	ReorderQuantity     int64
	PreferredSupplierID string
	// Ceiling for the preferred supplier's unit price; quotes above it
	// raise a price alert instead of an order.
	MaxPriceCents int64
	Priority      Priority
	AutoReorder   bool
}

func (r ReorderRule) Validate() error {
	if r.PartID == "" {
		return ErrValidation
	}
	if r.ReorderQuantity <= 0 {
		return ErrValidation
	}
	if r.MinStock < 0 || r.MaxPriceCents < 0 {
		return ErrValidation
	}
	switch r.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return ErrValidation
	}
	return nil
}
