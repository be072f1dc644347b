package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/service/mocks"
)

func TestServiceTopParts(t *testing.T) {
	t.Parallel()

	records := []model.UsageRecord{
		{
			ServiceID: "SVC-1",
			Lines: []model.UsageLine{
				{PartID: "P-001", PartName: "Brake Pads", Quantity: 2, TotalCostCents: 9000},
				{PartID: "P-002", PartName: "Oil Filter", Quantity: 1, TotalCostCents: 800},
			},
		},
		{
			ServiceID: "SVC-2",
			Lines: []model.UsageLine{
				{PartID: "P-001", PartName: "Brake Pads", Quantity: 2, TotalCostCents: 9200},
				{PartID: "P-003", PartName: "Wiper Blades", Quantity: 4, TotalCostCents: 3600},
			},
		},
	}

	usage := mocks.NewMockUsageRepository(t)
	usage.On("ListSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		return time.Since(since) > 6*24*time.Hour
	})).Return(records, nil).Twice()

	svc := NewAnalyticsService(usage, mocks.NewMockOrderService(t))

	out, err := svc.TopParts(context.Background(), 7*24*time.Hour, 10)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Ranked by consumed quantity, part ID breaking ties.
	assert.Equal(t, model.TopPart{PartID: "P-001", PartName: "Brake Pads", TotalQuantity: 4, TotalCents: 18200}, out[0])
	assert.Equal(t, "P-003", out[1].PartID)
	assert.Equal(t, "P-002", out[2].PartID)

	out, err = svc.TopParts(context.Background(), 7*24*time.Hour, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "P-001", out[0].PartID)
}

func TestServiceSupplierPerformance(t *testing.T) {
	t.Parallel()

	autozone := model.SupplierSnapshot{ID: "SUP-001", Name: "AutoZone Pro"}
	bosch := model.SupplierSnapshot{ID: "SUP-002", Name: "Bosch Direct"}

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	orders := []model.PurchaseOrder{
		{
			// Received 6 hours after creation, 2 hours ahead of schedule.
			ID: uuid.New(), Supplier: autozone, Status: model.OrderStatusReceived,
			CreatedAt:        created,
			ExpectedDelivery: created.Add(8 * time.Hour),
			ReceivedAt:       lo.ToPtr(created.Add(6 * time.Hour)),
		},
		{
			// Received a day late.
			ID: uuid.New(), Supplier: autozone, Status: model.OrderStatusReceived,
			CreatedAt:        created,
			ExpectedDelivery: created.Add(24 * time.Hour),
			ReceivedAt:       lo.ToPtr(created.Add(48 * time.Hour)),
		},
		{
			ID: uuid.New(), Supplier: autozone, Status: model.OrderStatusSent,
			CreatedAt:        created,
			ExpectedDelivery: created.Add(8 * time.Hour),
		},
		{
			ID: uuid.New(), Supplier: bosch, Status: model.OrderStatusCancelled,
			CreatedAt:        created,
			ExpectedDelivery: created.Add(2 * time.Hour),
		},
	}

	orderSvc := mocks.NewMockOrderService(t)
	orderSvc.On("List", mock.Anything, model.OrdersFilter{}).Return(orders, nil).Once()

	svc := NewAnalyticsService(mocks.NewMockUsageRepository(t), orderSvc)

	out, err := svc.SupplierPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Sorted by supplier name.
	az := out[0]
	assert.Equal(t, "AutoZone Pro", az.SupplierName)
	assert.Equal(t, 3, az.TotalOrders)
	assert.Equal(t, 2, az.CompletedOrders)
	assert.InDelta(t, 2.0/3.0, az.CompletionRate, 1e-9)
	assert.Equal(t, 1, az.OnTimeDeliveries)
	assert.InDelta(t, 0.5, az.OnTimeRate, 1e-9)
	assert.InDelta(t, 27.0, az.AvgDeliveryHours, 1e-9)

	bd := out[1]
	assert.Equal(t, "Bosch Direct", bd.SupplierName)
	assert.Equal(t, 1, bd.TotalOrders)
	assert.Zero(t, bd.CompletedOrders)
	assert.Zero(t, bd.OnTimeRate)
	assert.Zero(t, bd.AvgDeliveryHours)
}

func TestServiceCostTrend(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	records := []model.UsageRecord{
		{RecordedAt: day1.Add(9 * time.Hour), TotalCostCents: 5000},
		{RecordedAt: day1.Add(16 * time.Hour), TotalCostCents: 2500},
		{RecordedAt: day2.Add(11 * time.Hour), TotalCostCents: 1000},
	}

	usage := mocks.NewMockUsageRepository(t)
	usage.On("ListSince", mock.Anything, mock.Anything).Return(records, nil).Once()

	svc := NewAnalyticsService(usage, mocks.NewMockOrderService(t))

	out, err := svc.CostTrend(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, model.CostTrendPoint{Day: day1, TotalCents: 7500}, out[0])
	assert.Equal(t, model.CostTrendPoint{Day: day2, TotalCents: 1000}, out[1])
}

func TestServiceCostTrendDefaultWindow(t *testing.T) {
	t.Parallel()

	usage := mocks.NewMockUsageRepository(t)
	usage.On("ListSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		days := time.Since(since).Hours() / 24
		return days > 29 && days < 31
	})).Return(nil, nil).Once()

	svc := NewAnalyticsService(usage, mocks.NewMockOrderService(t))

	out, err := svc.CostTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
