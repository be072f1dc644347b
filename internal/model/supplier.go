package model

import "time"

type DeliveryTime string

const (
	DeliverySameDay   DeliveryTime = "SAME_DAY"
	DeliveryTwoHours  DeliveryTime = "2_HOURS"
	DeliveryFourHours DeliveryTime = "4_HOURS"
	DeliveryOther     DeliveryTime = "OTHER"
)

type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "ACTIVE"
	SupplierInactive SupplierStatus = "INACTIVE"
)

// Supplier is seeded at startup and immutable afterwards.
type Supplier struct {
	ID string
	// Company name.
	Name string
	// Probability in [0, 1] that the supplier can actually deliver.
	Reliability float64
	// Multiplier applied to a part's average cost when quoting.
	PriceMultiplier float64
	DeliveryTime    DeliveryTime
	Status          SupplierStatus
}

// PriceQuote is one supplier's priced offer for a part.
type PriceQuote struct {
	SupplierID   string
	SupplierName string
	PriceCents   int64
	// Units the supplier can ship right now; zero means unavailable.
	Availability int64
	DeliveryTime DeliveryTime
	FetchedAt    time.Time
}
