// Package view holds the JSON representations the HTTP API serves and the
// conversions from the domain model.
package view

import (
	"time"

	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type Part struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PartNumber    string   `json:"part_number"`
	Category      string   `json:"category"`
	CurrentStock  int64    `json:"current_stock"`
	MinStock      int64    `json:"min_stock"`
	MaxStock      int64    `json:"max_stock"`
	Unit          string   `json:"unit"`
	AvgCostCents  int64    `json:"avg_cost_cents"`
	Compatibility []string `json:"compatibility"`
	Status        string   `json:"status"`
	CreatedAt     *string  `json:"created_at,omitempty"`
	UpdatedAt     *string  `json:"updated_at,omitempty"`
}

func PartFromModel(p *model.Part) Part {
	return Part{
		ID:            p.ID,
		Name:          p.Name,
		PartNumber:    p.PartNumber,
		Category:      p.Category,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		Unit:          p.Unit,
		AvgCostCents:  p.AvgCostCents,
		Compatibility: p.Compatibility,
		Status:        string(p.Status),
		CreatedAt:     timePtr(p.CreatedAt),
		UpdatedAt:     timePtr(p.UpdatedAt),
	}
}

func PartsFromModel(parts []*model.Part) []Part {
	return lo.Map(parts, func(p *model.Part, _ int) Part { return PartFromModel(p) })
}

type InventoryStatus struct {
	TotalParts      int    `json:"total_parts"`
	InStock         int    `json:"in_stock"`
	LowStock        int    `json:"low_stock"`
	Critical        int    `json:"critical"`
	OutOfStock      int    `json:"out_of_stock"`
	StockValueCents int64  `json:"stock_value_cents"`
	GeneratedAt     string `json:"generated_at"`
}

func InventoryStatusFromModel(st *model.InventoryStatus) InventoryStatus {
	return InventoryStatus{
		TotalParts:      st.TotalParts,
		InStock:         st.InStock,
		LowStock:        st.LowStock,
		Critical:        st.Critical,
		OutOfStock:      st.OutOfStock,
		StockValueCents: st.StockValueCents,
		GeneratedAt:     st.GeneratedAt.Format(time.RFC3339),
	}
}

type SupplierSnapshot struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DeliveryTime string `json:"delivery_time"`
}

type Order struct {
	ID                string           `json:"id"`
	PartID            string           `json:"part_id"`
	PartName          string           `json:"part_name"`
	Quantity          int64            `json:"quantity"`
	UnitPriceCents    int64            `json:"unit_price_cents"`
	TotalPriceCents   int64            `json:"total_price_cents"`
	Supplier          SupplierSnapshot `json:"supplier"`
	Type              string           `json:"type"`
	Priority          string           `json:"priority"`
	Status            string           `json:"status"`
	ApprovedBy        string           `json:"approved_by"`
	CreatedAt         string           `json:"created_at"`
	ExpectedDelivery  string           `json:"expected_delivery"`
	ConfirmedAt       *string          `json:"confirmed_at,omitempty"`
	SupplierReference *string          `json:"supplier_reference,omitempty"`
	ConfirmedDelivery *string          `json:"confirmed_delivery,omitempty"`
	ReceivedAt        *string          `json:"received_at,omitempty"`
	ReceivedQuantity  *int64           `json:"received_quantity,omitempty"`
}

func OrderFromModel(ord *model.PurchaseOrder) Order {
	return Order{
		ID:              ord.ID.String(),
		PartID:          ord.PartID,
		PartName:        ord.PartName,
		Quantity:        ord.Quantity,
		UnitPriceCents:  ord.UnitPriceCents,
		TotalPriceCents: ord.TotalPriceCents,
		Supplier: SupplierSnapshot{
			ID:           ord.Supplier.ID,
			Name:         ord.Supplier.Name,
			DeliveryTime: string(ord.Supplier.DeliveryTime),
		},
		Type:              string(ord.Type),
		Priority:          string(ord.Priority),
		Status:            string(ord.Status),
		ApprovedBy:        ord.ApprovedBy,
		CreatedAt:         ord.CreatedAt.Format(time.RFC3339),
		ExpectedDelivery:  ord.ExpectedDelivery.Format(time.RFC3339),
		ConfirmedAt:       timePtr(ord.ConfirmedAt),
		SupplierReference: ord.SupplierReference,
		ConfirmedDelivery: timePtr(ord.ConfirmedDelivery),
		ReceivedAt:        timePtr(ord.ReceivedAt),
		ReceivedQuantity:  ord.ReceivedQuantity,
	}
}

func OrdersFromModel(orders []model.PurchaseOrder) []Order {
	return lo.Map(orders, func(ord model.PurchaseOrder, _ int) Order { return OrderFromModel(&ord) })
}

type Quote struct {
	SupplierID   string `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	PriceCents   int64  `json:"price_cents"`
	Availability int64  `json:"availability"`
	DeliveryTime string `json:"delivery_time"`
	FetchedAt    string `json:"fetched_at"`
}

func QuoteFromModel(q *model.PriceQuote) Quote {
	return Quote{
		SupplierID:   q.SupplierID,
		SupplierName: q.SupplierName,
		PriceCents:   q.PriceCents,
		Availability: q.Availability,
		DeliveryTime: string(q.DeliveryTime),
		FetchedAt:    q.FetchedAt.Format(time.RFC3339),
	}
}

func QuotesFromModel(quotes []model.PriceQuote) []Quote {
	return lo.Map(quotes, func(q model.PriceQuote, _ int) Quote { return QuoteFromModel(&q) })
}

type Rule struct {
	PartID              string `json:"part_id"`
	MinStock            int64  `json:"min_stock"`
	ReorderQuantity     int64  `json:"reorder_quantity"`
	PreferredSupplierID string `json:"preferred_supplier_id"`
	MaxPriceCents       int64  `json:"max_price_cents"`
	Priority            string `json:"priority"`
	AutoReorder         bool   `json:"auto_reorder"`
}

func RuleFromModel(r *model.ReorderRule) Rule {
	return Rule{
		PartID:              r.PartID,
		MinStock:            r.MinStock,
		ReorderQuantity:     r.ReorderQuantity,
		PreferredSupplierID: r.PreferredSupplierID,
		MaxPriceCents:       r.MaxPriceCents,
		Priority:            string(r.Priority),
		AutoReorder:         r.AutoReorder,
	}
}

func (r Rule) ToModel() model.ReorderRule {
	return model.ReorderRule{
		PartID:              r.PartID,
		MinStock:            r.MinStock,
		ReorderQuantity:     r.ReorderQuantity,
		PreferredSupplierID: r.PreferredSupplierID,
		MaxPriceCents:       r.MaxPriceCents,
		Priority:            model.Priority(r.Priority),
		AutoReorder:         r.AutoReorder,
	}
}

func RulesFromModel(rules []model.ReorderRule) []Rule {
	return lo.Map(rules, func(r model.ReorderRule, _ int) Rule { return RuleFromModel(&r) })
}

type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt string         `json:"created_at"`
	Read      bool           `json:"read"`
}

func NotificationFromModel(n *model.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		Read:      n.Read,
	}
}

func NotificationsFromModel(list []model.Notification) []Notification {
	return lo.Map(list, func(n model.Notification, _ int) Notification { return NotificationFromModel(&n) })
}

type VehicleInfo struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
}

func (v VehicleInfo) ToModel() model.VehicleInfo {
	return model.VehicleInfo{
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
	}
}

type UsageLine struct {
	PartID         string `json:"part_id"`
	PartName       string `json:"part_name,omitempty"`
	Quantity       int64  `json:"quantity"`
	UnitCostCents  int64  `json:"unit_cost_cents,omitempty"`
	TotalCostCents int64  `json:"total_cost_cents,omitempty"`
	WarrantyPeriod string `json:"warranty_period,omitempty"`
}

func (l UsageLine) ToModel() model.UsageLine {
	return model.UsageLine{
		PartID:         l.PartID,
		PartName:       l.PartName,
		Quantity:       l.Quantity,
		UnitCostCents:  l.UnitCostCents,
		WarrantyPeriod: l.WarrantyPeriod,
	}
}

type UsageRecord struct {
	ID             string      `json:"id"`
	ServiceID      string      `json:"service_id"`
	CustomerID     string      `json:"customer_id"`
	Vehicle        VehicleInfo `json:"vehicle"`
	Lines          []UsageLine `json:"lines"`
	LaborCostCents int64       `json:"labor_cost_cents"`
	TotalCostCents int64       `json:"total_cost_cents"`
	RecordedAt     string      `json:"recorded_at"`
}

func UsageRecordFromModel(rec *model.UsageRecord) UsageRecord {
	return UsageRecord{
		ID:         rec.ID,
		ServiceID:  rec.ServiceID,
		CustomerID: rec.CustomerID,
		Vehicle: VehicleInfo{
			Make:         rec.Vehicle.Make,
			Model:        rec.Vehicle.Model,
			Year:         rec.Vehicle.Year,
			LicensePlate: rec.Vehicle.LicensePlate,
		},
		Lines: lo.Map(rec.Lines, func(l model.UsageLine, _ int) UsageLine {
			return UsageLine{
				PartID:         l.PartID,
				PartName:       l.PartName,
				Quantity:       l.Quantity,
				UnitCostCents:  l.UnitCostCents,
				TotalCostCents: l.TotalCostCents,
				WarrantyPeriod: l.WarrantyPeriod,
			}
		}),
		LaborCostCents: rec.LaborCostCents,
		TotalCostCents: rec.TotalCostCents,
		RecordedAt:     rec.RecordedAt.Format(time.RFC3339),
	}
}

type InvoiceLine struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitCents   int64  `json:"unit_cents"`
	TotalCents  int64  `json:"total_cents"`
}

type Invoice struct {
	ServiceID     string        `json:"service_id"`
	CustomerID    string        `json:"customer_id"`
	Lines         []InvoiceLine `json:"lines"`
	SubtotalCents int64         `json:"subtotal_cents"`
	TaxCents      int64         `json:"tax_cents"`
	TotalCents    int64         `json:"total_cents"`
	CreatedAt     string        `json:"created_at"`
	DueAt         string        `json:"due_at"`
}

func InvoiceFromModel(inv *model.Invoice) Invoice {
	return Invoice{
		ServiceID:  inv.ServiceID,
		CustomerID: inv.CustomerID,
		Lines: lo.Map(inv.Lines, func(l model.InvoiceLine, _ int) InvoiceLine {
			return InvoiceLine{
				Description: l.Description,
				Quantity:    l.Quantity,
				UnitCents:   l.UnitCents,
				TotalCents:  l.TotalCents,
			}
		}),
		SubtotalCents: inv.SubtotalCents,
		TaxCents:      inv.TaxCents,
		TotalCents:    inv.TotalCents,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		DueAt:         inv.DueAt.Format(time.RFC3339),
	}
}

type WarrantyItem struct {
	PartID        string `json:"part_id"`
	PartName      string `json:"part_name"`
	ServiceDate   string `json:"service_date"`
	Months        int    `json:"months"`
	ExpiresAt     string `json:"expires_at"`
	Active        bool   `json:"active"`
	DaysRemaining int    `json:"days_remaining"`
}

func WarrantiesFromModel(items []model.WarrantyItem) []WarrantyItem {
	return lo.Map(items, func(it model.WarrantyItem, _ int) WarrantyItem {
		return WarrantyItem{
			PartID:        it.PartID,
			PartName:      it.PartName,
			ServiceDate:   it.ServiceDate.Format(time.RFC3339),
			Months:        it.Months,
			ExpiresAt:     it.ExpiresAt.Format(time.RFC3339),
			Active:        it.Active,
			DaysRemaining: it.DaysRemaining,
		}
	})
}

type TopPart struct {
	PartID        string `json:"part_id"`
	PartName      string `json:"part_name"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalCents    int64  `json:"total_cents"`
}

func TopPartsFromModel(rows []model.TopPart) []TopPart {
	return lo.Map(rows, func(tp model.TopPart, _ int) TopPart {
		return TopPart{
			PartID:        tp.PartID,
			PartName:      tp.PartName,
			TotalQuantity: tp.TotalQuantity,
			TotalCents:    tp.TotalCents,
		}
	})
}

type SupplierPerformance struct {
	SupplierID       string  `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	TotalOrders      int     `json:"total_orders"`
	CompletedOrders  int     `json:"completed_orders"`
	CompletionRate   float64 `json:"completion_rate"`
	OnTimeDeliveries int     `json:"on_time_deliveries"`
	OnTimeRate       float64 `json:"on_time_rate"`
	AvgDeliveryHours float64 `json:"avg_delivery_hours"`
}

func SupplierPerformanceFromModel(rows []model.SupplierPerformance) []SupplierPerformance {
	return lo.Map(rows, func(sp model.SupplierPerformance, _ int) SupplierPerformance {
		return SupplierPerformance{
			SupplierID:       sp.SupplierID,
			SupplierName:     sp.SupplierName,
			TotalOrders:      sp.TotalOrders,
			CompletedOrders:  sp.CompletedOrders,
			CompletionRate:   sp.CompletionRate,
			OnTimeDeliveries: sp.OnTimeDeliveries,
			OnTimeRate:       sp.OnTimeRate,
			AvgDeliveryHours: sp.AvgDeliveryHours,
		}
	})
}

type CostTrendPoint struct {
	Day        string `json:"day"`
	TotalCents int64  `json:"total_cents"`
}

func CostTrendFromModel(points []model.CostTrendPoint) []CostTrendPoint {
	return lo.Map(points, func(p model.CostTrendPoint, _ int) CostTrendPoint {
		return CostTrendPoint{
			Day:        p.Day.Format("2006-01-02"),
			TotalCents: p.TotalCents,
		}
	})
}

type ReorderingReport struct {
	PartsBelowThreshold []Part  `json:"parts_below_threshold"`
	OutstandingOrders   []Order `json:"outstanding_orders"`
	LastSweepAt         *string `json:"last_sweep_at,omitempty"`
	SweepRunning        bool    `json:"sweep_running"`
	GeneratedAt         string  `json:"generated_at"`
}

func ReorderingReportFromModel(rep *model.ReorderingReport) ReorderingReport {
	parts := lo.Map(rep.PartsBelowThreshold, func(p model.Part, _ int) Part {
		return PartFromModel(&p)
	})

	return ReorderingReport{
		PartsBelowThreshold: parts,
		OutstandingOrders:   OrdersFromModel(rep.OutstandingOrders),
		LastSweepAt:         timePtr(rep.LastSweepAt),
		SweepRunning:        rep.SweepRunning,
		GeneratedAt:         rep.GeneratedAt.Format(time.RFC3339),
	}
}

func timePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
