package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type InventoryService interface {
	ListParts(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
}

type RulesService interface {
	List(ctx context.Context) ([]model.ReorderRule, error)
}

type OrderService interface {
	Place(ctx context.Context, params model.PlaceOrderParams) (*model.PurchaseOrder, error)
	Outstanding(ctx context.Context, partID string) (bool, error)
	List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error)
}

type PricingService interface {
	QuoteFromSupplier(ctx context.Context, partID, supplierID string) (*model.PriceQuote, error)
}

type Notifier interface {
	Notify(ctx context.Context, typ model.NotificationType, message string, payload map[string]any) (*model.Notification, error)
}

type service struct {
	inventory InventoryService
	rules     RulesService
	orders    OrderService
	pricing   PricingService
	notifier  Notifier

	interval time.Duration

	mu          sync.Mutex
	sweeping    bool
	lastSweepAt *time.Time
	stop        chan struct{}
	done        chan struct{}
}

func NewMonitorService(
	inventory InventoryService,
	rules RulesService,
	orders OrderService,
	pricing PricingService,
	notifier Notifier,
	interval time.Duration,
) *service {
	return &service{
		inventory: inventory,
		rules:     rules,
		orders:    orders,
		pricing:   pricing,
		notifier:  notifier,
		interval:  interval,
	}
}

// Start launches the periodic sweep and runs one sweep immediately.
// Calling Start on a running monitor is a no-op.
func (s *service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	logger.Info(ctx, "reorder monitor started", logger.Duration("interval", s.interval))

	go func() {
		defer close(done)

		s.Sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the periodic sweep and waits for an in-flight sweep loop to
// exit. Calling Stop on a stopped monitor is a no-op.
func (s *service) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// Sweep walks every part with a rule and acts on breached thresholds.
// Sweeps never overlap: a sweep triggered while one is in flight is
// skipped. Per-part failures are logged and do not abort the sweep.
func (s *service) Sweep(ctx context.Context) {
	s.mu.Lock()
	if s.sweeping {
		s.mu.Unlock()
		logger.Warn(ctx, "sweep skipped: previous sweep still running")
		return
	}
	s.sweeping = true
	s.mu.Unlock()

	defer func() {
		now := time.Now()
		s.mu.Lock()
		s.sweeping = false
		s.lastSweepAt = &now
		s.mu.Unlock()
	}()

	rules, err := s.rules.List(ctx)
	if err != nil {
		logger.Error(ctx, "sweep: list rules", logger.ErrorF(err))
		return
	}

	parts, err := s.inventory.ListParts(ctx, model.PartsFilter{})
	if err != nil {
		logger.Error(ctx, "sweep: list parts", logger.ErrorF(err))
		return
	}

	byID := make(map[string]*model.Part, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}

	for _, rule := range rules {
		if err := s.checkPart(ctx, rule, byID[rule.PartID]); err != nil {
			logger.Error(ctx, "sweep: part check failed",
				logger.String("part_id", rule.PartID),
				logger.ErrorF(err),
			)
		}
	}
}

func (s *service) checkPart(ctx context.Context, rule model.ReorderRule, part *model.Part) error {
	const op = "monitor.service.checkPart"

	if part == nil {
		return fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}
	if part.CurrentStock > rule.MinStock {
		return nil
	}

	outstanding, err := s.orders.Outstanding(ctx, part.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if outstanding {
		return nil
	}

	log := logger.With(
		logger.String("part_id", part.ID),
		logger.Int64("current_stock", part.CurrentStock),
		logger.Int64("min_stock", rule.MinStock),
	)

	if !rule.AutoReorder {
		log.Info(ctx, "low stock, manual reorder required")
		_, err := s.notifier.Notify(ctx, model.NotificationLowStockManual,
			fmt.Sprintf("%s is low on stock (%d left), manual reorder required", part.Name, part.CurrentStock),
			map[string]any{
				"part_id":       part.ID,
				"part_name":     part.Name,
				"current_stock": part.CurrentStock,
				"min_stock":     rule.MinStock,
			},
		)
		return err
	}

	quote, err := s.pricing.QuoteFromSupplier(ctx, part.ID, rule.PreferredSupplierID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Above the rule's ceiling we alert and stop: no automatic fallback
	// to another supplier, so spend stays under the admin's control.
	if rule.MaxPriceCents > 0 && quote.PriceCents > rule.MaxPriceCents {
		log.Warn(ctx, "preferred supplier price above rule max",
			logger.Int64("quote_cents", quote.PriceCents),
			logger.Int64("max_price_cents", rule.MaxPriceCents),
		)
		_, err := s.notifier.Notify(ctx, model.NotificationPriceAlert,
			fmt.Sprintf("%s quote from %s is %d, above the %d limit", part.Name, quote.SupplierName, quote.PriceCents, rule.MaxPriceCents),
			map[string]any{
				"part_id":         part.ID,
				"supplier_id":     quote.SupplierID,
				"quote_cents":     quote.PriceCents,
				"max_price_cents": rule.MaxPriceCents,
			},
		)
		return err
	}

	ord, err := s.orders.Place(ctx, model.PlaceOrderParams{
		PartID:         part.ID,
		SupplierID:     rule.PreferredSupplierID,
		Quantity:       rule.ReorderQuantity,
		Type:           model.OrderTypeAutomatic,
		Priority:       rule.Priority,
		UnitPriceCents: quote.PriceCents,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "automatic order placed",
		logger.String("order_id", ord.ID.String()),
		logger.Int64("quantity", ord.Quantity),
	)

	return nil
}

// Report summarizes the reordering state for the admin dashboard.
func (s *service) Report(ctx context.Context) (*model.ReorderingReport, error) {
	const op = "monitor.service.Report"

	parts, err := s.inventory.ListParts(ctx, model.PartsFilter{
		Statuses: []model.StockStatus{
			model.StockStatusCritical,
			model.StockStatusOutOfStock,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	outstanding, err := s.orders.List(ctx, model.OrdersFilter{
		Statuses: []model.OrderStatus{
			model.OrderStatusPending,
			model.OrderStatusSent,
			model.OrderStatusConfirmed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	lastSweep := s.lastSweepAt
	sweeping := s.sweeping
	s.mu.Unlock()

	report := &model.ReorderingReport{
		OutstandingOrders: outstanding,
		LastSweepAt:       lastSweep,
		SweepRunning:      sweeping,
		GeneratedAt:       time.Now(),
	}
	for _, p := range parts {
		report.PartsBelowThreshold = append(report.PartsBelowThreshold, *p)
	}

	return report, nil
}
