package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/service/mocks"
)

func TestServiceSweep(t *testing.T) {
	t.Parallel()

	type deps struct {
		inventory *mocks.MockInventoryService
		rules     *mocks.MockRuleRepository
		orders    *mocks.MockOrderService
		pricing   *mocks.MockPricingService
		notifier  *mocks.MockNotifier
	}

	newSvc := func(d deps) *service {
		return NewMonitorService(d.inventory, d.rules, d.orders, d.pricing, d.notifier, time.Minute)
	}

	rule := model.ReorderRule{
		PartID:              "P-100",
		MinStock:            5,
		ReorderQuantity:     20,
		PreferredSupplierID: "SUP-001",
		MaxPriceCents:       1000,
		Priority:            model.PriorityHigh,
		AutoReorder:         true,
	}
	lowPart := &model.Part{ID: "P-100", Name: "Brake Pads", CurrentStock: 3, MinStock: 5}
	healthyPart := &model.Part{ID: "P-100", Name: "Brake Pads", CurrentStock: 50, MinStock: 5}

	type testCase struct {
		name  string
		setup func(d deps)
	}

	tests := []testCase{
		{
			name: "stock above threshold: nothing happens",
			setup: func(d deps) {
				d.rules.On("List", mock.Anything).Return([]model.ReorderRule{rule}, nil).Once()
				d.inventory.On("ListParts", mock.Anything, model.PartsFilter{}).
					Return([]*model.Part{healthyPart}, nil).
					Once()
			},
		},
		{
			name: "quote within ceiling: automatic order placed",
			setup: func(d deps) {
				d.rules.On("List", mock.Anything).Return([]model.ReorderRule{rule}, nil).Once()
				d.inventory.On("ListParts", mock.Anything, model.PartsFilter{}).
					Return([]*model.Part{lowPart}, nil).
					Once()
				d.orders.On("Outstanding", mock.Anything, "P-100").Return(false, nil).Once()
				d.pricing.On("QuoteFromSupplier", mock.Anything, "P-100", "SUP-001").
					Return(&model.PriceQuote{SupplierID: "SUP-001", SupplierName: "AutoZone Pro", PriceCents: 900}, nil).
					Once()
				d.orders.
					On("Place", mock.Anything, mock.MatchedBy(func(p model.PlaceOrderParams) bool {
						return p.PartID == "P-100" &&
							p.SupplierID == "SUP-001" &&
							p.Quantity == 20 &&
							p.Type == model.OrderTypeAutomatic &&
							p.UnitPriceCents == 900
					})).
					Return(&model.PurchaseOrder{PartID: "P-100", Quantity: 20, Status: model.OrderStatusSent}, nil).
					Once()
			},
		},
		{
			name: "quote above ceiling: price alert, no order",
			setup: func(d deps) {
				d.rules.On("List", mock.Anything).Return([]model.ReorderRule{rule}, nil).Once()
				d.inventory.On("ListParts", mock.Anything, model.PartsFilter{}).
					Return([]*model.Part{lowPart}, nil).
					Once()
				d.orders.On("Outstanding", mock.Anything, "P-100").Return(false, nil).Once()
				d.pricing.On("QuoteFromSupplier", mock.Anything, "P-100", "SUP-001").
					Return(&model.PriceQuote{SupplierID: "SUP-001", SupplierName: "AutoZone Pro", PriceCents: 1200}, nil).
					Once()
				d.notifier.
					On("Notify", mock.Anything, model.NotificationPriceAlert, mock.Anything, mock.Anything).
					Return(&model.Notification{}, nil).
					Once()
			},
		},
		{
			name: "outstanding order: no duplicate is placed",
			setup: func(d deps) {
				d.rules.On("List", mock.Anything).Return([]model.ReorderRule{rule}, nil).Once()
				d.inventory.On("ListParts", mock.Anything, model.PartsFilter{}).
					Return([]*model.Part{lowPart}, nil).
					Once()
				d.orders.On("Outstanding", mock.Anything, "P-100").Return(true, nil).Once()
			},
		},
		{
			name: "auto reorder disabled: manual notification only",
			setup: func(d deps) {
				manualRule := rule
				manualRule.AutoReorder = false

				d.rules.On("List", mock.Anything).Return([]model.ReorderRule{manualRule}, nil).Once()
				d.inventory.On("ListParts", mock.Anything, model.PartsFilter{}).
					Return([]*model.Part{lowPart}, nil).
					Once()
				d.orders.On("Outstanding", mock.Anything, "P-100").Return(false, nil).Once()
				d.notifier.
					On("Notify", mock.Anything, model.NotificationLowStockManual, mock.Anything, mock.Anything).
					Return(&model.Notification{}, nil).
					Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				inventory: mocks.NewMockInventoryService(t),
				rules:     mocks.NewMockRuleRepository(t),
				orders:    mocks.NewMockOrderService(t),
				pricing:   mocks.NewMockPricingService(t),
				notifier:  mocks.NewMockNotifier(t),
			}
			tt.setup(d)

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			svc.Sweep(ctx)

			d.orders.AssertExpectations(t)
			d.notifier.AssertExpectations(t)
		})
	}
}

func TestServiceSweepRecordsLastSweep(t *testing.T) {
	t.Parallel()

	inventory := mocks.NewMockInventoryService(t)
	rules := mocks.NewMockRuleRepository(t)

	rules.On("List", mock.Anything).Return(nil, nil).Once()
	inventory.On("ListParts", mock.Anything, model.PartsFilter{}).Return(nil, nil).Once()

	svc := NewMonitorService(
		inventory,
		rules,
		mocks.NewMockOrderService(t),
		mocks.NewMockPricingService(t),
		mocks.NewMockNotifier(t),
		time.Minute,
	)

	require.Nil(t, svc.lastSweepAt)
	svc.Sweep(context.Background())
	require.NotNil(t, svc.lastSweepAt)
	assert.WithinDuration(t, time.Now(), *svc.lastSweepAt, time.Second)
}

func TestServiceStartStop(t *testing.T) {
	t.Parallel()

	inventory := mocks.NewMockInventoryService(t)
	rules := mocks.NewMockRuleRepository(t)

	// The immediate sweep on Start plus any ticker-driven ones.
	rules.On("List", mock.Anything).Return(nil, nil)
	inventory.On("ListParts", mock.Anything, model.PartsFilter{}).Return(nil, nil)

	svc := NewMonitorService(
		inventory,
		rules,
		mocks.NewMockOrderService(t),
		mocks.NewMockPricingService(t),
		mocks.NewMockNotifier(t),
		time.Hour,
	)

	assert.False(t, svc.IsRunning())

	svc.Start(context.Background())
	assert.True(t, svc.IsRunning())

	// Second Start is a no-op.
	svc.Start(context.Background())
	assert.True(t, svc.IsRunning())

	svc.Stop()
	assert.False(t, svc.IsRunning())

	// Second Stop is a no-op.
	svc.Stop()
	assert.False(t, svc.IsRunning())
}

func TestServiceReport(t *testing.T) {
	t.Parallel()

	inventory := mocks.NewMockInventoryService(t)
	orders := mocks.NewMockOrderService(t)

	critical := &model.Part{ID: "P-3", Name: "Battery", CurrentStock: 1, MinStock: 4, Status: model.StockStatusCritical}
	out := &model.Part{ID: "P-5", Name: "Wiper Blades", CurrentStock: 0, MinStock: 2, Status: model.StockStatusOutOfStock}

	inventory.
		On("ListParts", mock.Anything, model.PartsFilter{
			Statuses: []model.StockStatus{model.StockStatusCritical, model.StockStatusOutOfStock},
		}).
		Return([]*model.Part{critical, out}, nil).
		Once()
	orders.
		On("List", mock.Anything, model.OrdersFilter{
			Statuses: []model.OrderStatus{
				model.OrderStatusPending,
				model.OrderStatusSent,
				model.OrderStatusConfirmed,
			},
		}).
		Return([]model.PurchaseOrder{{PartID: "P-3", Status: model.OrderStatusSent}}, nil).
		Once()

	svc := NewMonitorService(
		inventory,
		mocks.NewMockRuleRepository(t),
		orders,
		mocks.NewMockPricingService(t),
		mocks.NewMockNotifier(t),
		time.Minute,
	)

	rep, err := svc.Report(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Len(t, rep.PartsBelowThreshold, 2)
	assert.Len(t, rep.OutstandingOrders, 1)
	assert.False(t, rep.SweepRunning)
	assert.Nil(t, rep.LastSweepAt)
}
