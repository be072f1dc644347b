package model

import "time"

// TopPart is one row of the top-consumed-parts report.
type TopPart struct {
	PartID        string
	PartName      string
	TotalQuantity int64
	TotalCents    int64
}

// SupplierPerformance is recomputed on demand from purchase-order history.
type SupplierPerformance struct {
	SupplierID       string
	SupplierName     string
	TotalOrders      int
	CompletedOrders  int
	CompletionRate   float64
	OnTimeDeliveries int
	OnTimeRate       float64
	AvgDeliveryHours float64
}

type CostTrendPoint struct {
	Day        time.Time
	TotalCents int64
}

// ReorderingReport summarizes the automated-reordering state for the shop.
type ReorderingReport struct {
	PartsBelowThreshold []Part
	OutstandingOrders   []PurchaseOrder
	LastSweepAt         *time.Time
	SweepRunning        bool
	GeneratedAt         time.Time
}
