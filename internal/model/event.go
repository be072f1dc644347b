package model

import (
	"time"

	"github.com/google/uuid"
)

type SupplierUpdateType string

const (
	SupplierUpdateConfirmed SupplierUpdateType = "CONFIRMED"
	SupplierUpdateDelivered SupplierUpdateType = "DELIVERED"
)

// SupplierUpdate is a message from the supplier channel about an
// outstanding purchase order.
type SupplierUpdate struct {
	Type    SupplierUpdateType
	OrderID uuid.UUID
	// Present on CONFIRMED updates.
	SupplierReference string
	ConfirmedDelivery time.Time
	// Present on DELIVERED updates.
	ReceivedQuantity int64
	ReceivedAt       time.Time
}
