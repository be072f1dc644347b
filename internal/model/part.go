package model

import "time"

type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusLowStock   StockStatus = "LOW_STOCK"
	StockStatusCritical   StockStatus = "CRITICAL"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// lowStockFactor widens the low-stock band above the critical threshold.
const lowStockFactor = 1.5

type Part struct {
	// Globally unique identifier of the part.
	ID string
	// Human-readable part name.
	Name string
	// Manufacturer part number.
	PartNumber string
	// Category of the part (brakes, filters, electrical, ...).
	Category string
	// Quantity of this part currently available in stock.
	CurrentStock int64
	// Stock level at which the part becomes critical and reorderable.
	MinStock int64
	// Target stock ceiling used for receiving and reporting.
	MaxStock int64
	// Unit of measure (piece, litre, set).
	Unit string
	// Weighted-average acquisition cost in minor currency units.
	AvgCostCents int64
	// Vehicle descriptors this part fits, or ["Universal"].
	Compatibility []string
	// Derived stock bucket; always consistent with CurrentStock vs MinStock.
	Status StockStatus
	// Timestamp when the part was created.
	CreatedAt *time.Time
	// Timestamp when stock or cost last changed.
	UpdatedAt *time.Time
}

// StatusForStock derives the stock bucket from the current level and the
// critical threshold.
func StatusForStock(current, minStock int64) StockStatus {
	switch {
	case current <= 0:
		return StockStatusOutOfStock
	case current < minStock:
		return StockStatusCritical
	case float64(current) < float64(minStock)*lowStockFactor:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

type PartsFilter struct {
	IDs        []string
	Categories []string
	Statuses   []StockStatus
}

func (f PartsFilter) Empty() bool {
	return len(f.IDs) == 0 &&
		len(f.Categories) == 0 &&
		len(f.Statuses) == 0
}

// InventoryStatus is the stock overview the shop dashboard renders.
type InventoryStatus struct {
	TotalParts      int
	InStock         int
	LowStock        int
	Critical        int
	OutOfStock      int
	StockValueCents int64
	GeneratedAt     time.Time
}
