package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type UsageHistory interface {
	ListSince(ctx context.Context, since time.Time) ([]model.UsageRecord, error)
}

type OrderHistory interface {
	List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error)
}

// service derives read-side projections from the append-only histories.
// Everything is recomputed on demand; nothing is cached.
type service struct {
	usage  UsageHistory
	orders OrderHistory
}

func NewAnalyticsService(usage UsageHistory, orders OrderHistory) *service {
	return &service{usage: usage, orders: orders}
}

// TopParts ranks parts by consumed quantity over the trailing window.
func (s *service) TopParts(ctx context.Context, window time.Duration, n int) ([]model.TopPart, error) {
	const op = "analytics.service.TopParts"

	records, err := s.usage.ListSince(ctx, time.Now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	acc := make(map[string]*model.TopPart)
	for _, rec := range records {
		for _, line := range rec.Lines {
			tp, ok := acc[line.PartID]
			if !ok {
				tp = &model.TopPart{PartID: line.PartID, PartName: line.PartName}
				acc[line.PartID] = tp
			}
			tp.TotalQuantity += line.Quantity
			tp.TotalCents += line.TotalCostCents
		}
	}

	out := make([]model.TopPart, 0, len(acc))
	for _, tp := range acc {
		out = append(out, *tp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].PartID < out[j].PartID
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}

	return out, nil
}

// SupplierPerformance aggregates completion and on-time rates per
// supplier from the full purchase-order history.
func (s *service) SupplierPerformance(ctx context.Context) ([]model.SupplierPerformance, error) {
	const op = "analytics.service.SupplierPerformance"

	orders, err := s.orders.List(ctx, model.OrdersFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	acc := make(map[string]*model.SupplierPerformance)
	deliverySum := make(map[string]float64)
	for _, ord := range orders {
		perf, ok := acc[ord.Supplier.ID]
		if !ok {
			perf = &model.SupplierPerformance{
				SupplierID:   ord.Supplier.ID,
				SupplierName: ord.Supplier.Name,
			}
			acc[ord.Supplier.ID] = perf
		}

		perf.TotalOrders++
		if ord.Status != model.OrderStatusReceived || ord.ReceivedAt == nil {
			continue
		}

		perf.CompletedOrders++
		if !ord.ReceivedAt.After(ord.ExpectedDelivery) {
			perf.OnTimeDeliveries++
		}
		deliverySum[ord.Supplier.ID] += ord.ReceivedAt.Sub(ord.CreatedAt).Hours()
	}

	out := make([]model.SupplierPerformance, 0, len(acc))
	for id, perf := range acc {
		if perf.TotalOrders > 0 {
			perf.CompletionRate = float64(perf.CompletedOrders) / float64(perf.TotalOrders)
		}
		if perf.CompletedOrders > 0 {
			perf.OnTimeRate = float64(perf.OnTimeDeliveries) / float64(perf.CompletedOrders)
			perf.AvgDeliveryHours = deliverySum[id] / float64(perf.CompletedOrders)
		}
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplierName < out[j].SupplierName })

	return out, nil
}

// CostTrend sums service spend per calendar day over the trailing days.
func (s *service) CostTrend(ctx context.Context, days int) ([]model.CostTrendPoint, error) {
	const op = "analytics.service.CostTrend"

	if days <= 0 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days)
	records, err := s.usage.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byDay := make(map[time.Time]int64)
	for _, rec := range records {
		day := rec.RecordedAt.Truncate(24 * time.Hour)
		byDay[day] += rec.TotalCostCents
	}

	out := make([]model.CostTrendPoint, 0, len(byDay))
	for day, total := range byDay {
		out = append(out, model.CostTrendPoint{Day: day, TotalCents: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })

	return out, nil
}
