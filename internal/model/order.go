package model

import (
	"time"

	"github.com/google/uuid"
)

type (
	OrderType   string
	OrderStatus string
)

const (
	OrderTypeAutomatic OrderType = "AUTOMATIC"
	OrderTypeManual    OrderType = "MANUAL"
)

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusReceived || s == OrderStatusCancelled
}

// Outstanding reports whether an order in this status still blocks new
// orders for the same part.
func (s OrderStatus) Outstanding() bool {
	switch s {
	case OrderStatusPending, OrderStatusSent, OrderStatusConfirmed:
		return true
	default:
		return false
	}
}

// SupplierSnapshot freezes the supplier terms at order time.
type SupplierSnapshot struct {
	ID           string
	Name         string
	DeliveryTime DeliveryTime
}

type PurchaseOrder struct {
	ID     uuid.UUID
	PartID string
	// Part name copied at order time for reporting.
	PartName        string
	Quantity        int64
	UnitPriceCents  int64
	TotalPriceCents int64
	Supplier        SupplierSnapshot
	Type            OrderType
	Priority        Priority
	Status          OrderStatus
	// Who approved the order: "system" for automatic orders.
	ApprovedBy       string
	CreatedAt        time.Time
	ExpectedDelivery time.Time
	ConfirmedAt      *time.Time
	// Reference the supplier returned on confirmation.
	SupplierReference *string
	ConfirmedDelivery *time.Time
	ReceivedAt        *time.Time
	ReceivedQuantity  *int64
}

// Complete reports whether the received quantity covers the ordered one.
func (o PurchaseOrder) Complete() bool {
	return o.ReceivedQuantity != nil && *o.ReceivedQuantity >= o.Quantity
}

type PlaceOrderParams struct {
	PartID     string
	SupplierID string
	Quantity   int64
	Type       OrderType
	Priority   Priority
	ApprovedBy string
	// Unit price already agreed with the supplier; zero means "quote now".
	UnitPriceCents int64
}

type ConfirmOrderParams struct {
	OrderID           uuid.UUID
	SupplierReference string
	ConfirmedDelivery time.Time
}

type ReceiveOrderParams struct {
	OrderID          uuid.UUID
	ReceivedQuantity int64
	ReceivedAt       time.Time
}

type OrdersFilter struct {
	PartID   string
	Statuses []OrderStatus
	Type     OrderType
}
