package model

import "time"

// VehicleInfo is a denormalized snapshot kept with each usage record.
type VehicleInfo struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
}

type UsageLine struct {
	PartID         string
	PartName       string
	Quantity       int64
	UnitCostCents  int64
	TotalCostCents int64
	// Human-entered warranty period, e.g. "12 months" or "2 years".
	WarrantyPeriod string
}

// UsageRecord is the append-only record of parts consumed by one service
// visit. ServiceID is the idempotency key.
type UsageRecord struct {
	ID             string
	ServiceID      string
	CustomerID     string
	Vehicle        VehicleInfo
	Lines          []UsageLine
	LaborCostCents int64
	TotalCostCents int64
	RecordedAt     time.Time
}

type InvoiceLine struct {
	Description string
	Quantity    int64
	UnitCents   int64
	TotalCents  int64
}

type Invoice struct {
	ServiceID     string
	CustomerID    string
	Lines         []InvoiceLine
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	CreatedAt     time.Time
	DueAt         time.Time
}

// WarrantyItem is derived from a usage line on demand.
type WarrantyItem struct {
	PartID        string
	PartName      string
	ServiceDate   time.Time
	Months        int
	ExpiresAt     time.Time
	Active        bool
	DaysRemaining int
}
