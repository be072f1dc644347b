package bootstrap

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type PartBatchCreator interface {
	CreateBatch(ctx context.Context, parts []*model.Part) error
}

type SupplierBatchCreator interface {
	CreateBatch(ctx context.Context, suppliers []model.Supplier) error
}

type RuleUpserter interface {
	Upsert(ctx context.Context, rule model.ReorderRule) error
}

const (
	SupplierAutoZone    = "SUP-001"
	SupplierBoschDirect = "SUP-002"
	SupplierEuroParts   = "SUP-003"
	SupplierBudgetAuto  = "SUP-004"
)

// SuppliersBootstrap seeds the supplier registry. Suppliers are immutable
// after seeding.
func SuppliersBootstrap(ctx context.Context, c SupplierBatchCreator) error {
	return c.CreateBatch(ctx, []model.Supplier{
		{
			ID:              SupplierAutoZone,
			Name:            "AutoZone Pro",
			Reliability:     0.95,
			PriceMultiplier: 1.0,
			DeliveryTime:    model.DeliverySameDay,
			Status:          model.SupplierActive,
		},
		{
			ID:              SupplierBoschDirect,
			Name:            "Bosch Direct",
			Reliability:     0.98,
			PriceMultiplier: 1.15,
			DeliveryTime:    model.DeliveryTwoHours,
			Status:          model.SupplierActive,
		},
		{
			ID:              SupplierEuroParts,
			Name:            "EuroParts Wholesale",
			Reliability:     0.90,
			PriceMultiplier: 0.92,
			DeliveryTime:    model.DeliveryFourHours,
			Status:          model.SupplierActive,
		},
		{
			ID:              SupplierBudgetAuto,
			Name:            "Budget Auto Supply",
			Reliability:     0.75,
			PriceMultiplier: 0.80,
			DeliveryTime:    model.DeliveryOther,
			Status:          model.SupplierInactive,
		},
	})
}

// PartsBootstrap seeds a small but realistic workshop inventory so the
// service is usable straight after start in memory mode.
func PartsBootstrap(ctx context.Context, c PartBatchCreator) error {
	now := time.Now()

	parts := []*model.Part{
		{
			ID:            "P-001",
			Name:          "Front Brake Pads",
			PartNumber:    "BP-2041-F",
			Category:      "Brakes",
			CurrentStock:  24,
			MinStock:      20,
			MaxStock:      80,
			Unit:          "set",
			AvgCostCents:  4550,
			Compatibility: []string{"Toyota Corolla 2015-2022", "Toyota Camry 2016-2023"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
		{
			ID:            "P-002",
			Name:          "Engine Oil Filter",
			PartNumber:    "OF-118",
			Category:      "Filters",
			CurrentStock:  64,
			MinStock:      30,
			MaxStock:      150,
			Unit:          "piece",
			AvgCostCents:  890,
			Compatibility: []string{"Universal"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
		{
			ID:            "P-003",
			Name:          "Car Battery 60Ah",
			PartNumber:    "BAT-60-EFB",
			Category:      "Electrical",
			CurrentStock:  7,
			MinStock:      8,
			MaxStock:      30,
			Unit:          "piece",
			AvgCostCents:  11900,
			Compatibility: []string{"Universal"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
		{
			ID:            "P-004",
			Name:          "Cabin Air Filter",
			PartNumber:    "CAF-77",
			Category:      "Filters",
			CurrentStock:  41,
			MinStock:      25,
			MaxStock:      120,
			Unit:          "piece",
			AvgCostCents:  1250,
			Compatibility: []string{"Honda Civic 2016-2023", "Honda CR-V 2017-2023"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
		{
			ID:            "P-005",
			Name:          "Wiper Blade 24\"",
			PartNumber:    "WB-24",
			Category:      "Exterior",
			CurrentStock:  0,
			MinStock:      15,
			MaxStock:      60,
			Unit:          "piece",
			AvgCostCents:  1600,
			Compatibility: []string{"Universal"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
		{
			ID:            "P-006",
			Name:          "Synthetic Engine Oil 5W-30",
			PartNumber:    "OIL-5W30-5L",
			Category:      "Fluids",
			CurrentStock:  38,
			MinStock:      20,
			MaxStock:      100,
			Unit:          "litre",
			AvgCostCents:  3200,
			Compatibility: []string{"Universal"},
			CreatedAt:     lo.ToPtr(now),
			UpdatedAt:     lo.ToPtr(now),
		},
	}

	return c.CreateBatch(ctx, parts)
}

// RulesBootstrap seeds the reordering policy for the seeded parts.
func RulesBootstrap(ctx context.Context, u RuleUpserter) error {
	rules := []model.ReorderRule{
		{
			PartID:              "P-001",
			MinStock:            20,
			ReorderQuantity:     40,
			PreferredSupplierID: SupplierAutoZone,
			MaxPriceCents:       6000,
			Priority:            model.PriorityHigh,
			AutoReorder:         true,
		},
		{
			PartID:              "P-002",
			MinStock:            30,
			ReorderQuantity:     60,
			PreferredSupplierID: SupplierEuroParts,
			MaxPriceCents:       1500,
			Priority:            model.PriorityMedium,
			AutoReorder:         true,
		},
		{
			PartID:              "P-003",
			MinStock:            8,
			ReorderQuantity:     12,
			PreferredSupplierID: SupplierBoschDirect,
			MaxPriceCents:       15000,
			Priority:            model.PriorityHigh,
			AutoReorder:         false,
		},
		{
			PartID:              "P-005",
			MinStock:            15,
			ReorderQuantity:     30,
			PreferredSupplierID: SupplierEuroParts,
			MaxPriceCents:       2500,
			Priority:            model.PriorityLow,
			AutoReorder:         true,
		},
	}

	for _, rule := range rules {
		if err := u.Upsert(ctx, rule); err != nil {
			return err
		}
	}

	return nil
}
