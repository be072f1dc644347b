package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, ord *model.PurchaseOrder) (uuid.UUID, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	Update(ctx context.Context, upd *model.PurchaseOrder) error
	List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error)
	HasOutstanding(ctx context.Context, partID string) (bool, error)
}

type InventoryService interface {
	Part(ctx context.Context, partID string) (*model.Part, error)
	RestockFromDelivery(ctx context.Context, partID string, qty, unitCostCents int64) (*model.Part, error)
}

type SupplierProvider interface {
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
}

type PricingService interface {
	QuoteFromSupplier(ctx context.Context, partID, supplierID string) (*model.PriceQuote, error)
}

type Notifier interface {
	Notify(ctx context.Context, typ model.NotificationType, message string, payload map[string]any) (*model.Notification, error)
}

type RuleProvider interface {
	RuleByPartID(ctx context.Context, partID string) (*model.ReorderRule, error)
}

type service struct {
	repo      OrderRepository
	inventory InventoryService
	suppliers SupplierProvider
	pricing   PricingService
	rules     RuleProvider
	notifier  Notifier
}

func NewOrderService(
	repo OrderRepository,
	inventory InventoryService,
	suppliers SupplierProvider,
	pricing PricingService,
	rules RuleProvider,
	notifier Notifier,
) *service {
	return &service{
		repo:      repo,
		inventory: inventory,
		suppliers: suppliers,
		pricing:   pricing,
		rules:     rules,
		notifier:  notifier,
	}
}

// Place creates a purchase order and dispatches it to the supplier
// channel in the same step, so the stored order is already SENT. A part
// with an outstanding order is refused; that guard is what keeps the
// monitor sweep and manual reorders from doubling up.
func (s *service) Place(ctx context.Context, params model.PlaceOrderParams) (*model.PurchaseOrder, error) {
	const op = "order.service.Place"
	log := logger.With(
		logger.String("part_id", params.PartID),
		logger.String("supplier_id", params.SupplierID),
		logger.String("type", string(params.Type)),
	)

	if params.PartID == "" || params.SupplierID == "" || params.Quantity <= 0 {
		log.Error(ctx, "wrong params")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	part, err := s.inventory.Part(ctx, params.PartID)
	if err != nil {
		log.Error(ctx, "part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	outstanding, err := s.repo.HasOutstanding(ctx, params.PartID)
	if err != nil {
		log.Error(ctx, "repository has outstanding", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if outstanding {
		log.Warn(ctx, "order refused: part already has outstanding order")
		return nil, fmt.Errorf("%s: %w", op, model.ErrOrderOutstanding)
	}

	sup, err := s.suppliers.SupplierByID(ctx, params.SupplierID)
	if err != nil {
		log.Error(ctx, "supplier by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unitPrice := params.UnitPriceCents
	if unitPrice <= 0 {
		quote, err := s.pricing.QuoteFromSupplier(ctx, params.PartID, params.SupplierID)
		if err != nil {
			log.Error(ctx, "quote from supplier", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		unitPrice = quote.PriceCents
	}

	// The rule's price ceiling binds manual orders too; the monitor
	// quotes before placing, so automatic orders arrive pre-checked.
	rule, err := s.rules.RuleByPartID(ctx, params.PartID)
	if err != nil && !errors.Is(err, model.ErrRuleNotFound) {
		log.Error(ctx, "rule by part id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rule != nil && rule.MaxPriceCents > 0 && unitPrice > rule.MaxPriceCents {
		log.Warn(ctx, "order refused: unit price above rule max",
			logger.Int64("unit_price_cents", unitPrice),
			logger.Int64("max_price_cents", rule.MaxPriceCents),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrPolicyViolation)
	}

	priority := params.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	approvedBy := params.ApprovedBy
	if approvedBy == "" && params.Type == model.OrderTypeAutomatic {
		approvedBy = "system"
	}

	now := time.Now()
	ord := &model.PurchaseOrder{
		ID:              uuid.New(),
		PartID:          part.ID,
		PartName:        part.Name,
		Quantity:        params.Quantity,
		UnitPriceCents:  unitPrice,
		TotalPriceCents: unitPrice * params.Quantity,
		Supplier: model.SupplierSnapshot{
			ID:           sup.ID,
			Name:         sup.Name,
			DeliveryTime: sup.DeliveryTime,
		},
		Type:             params.Type,
		Priority:         priority,
		Status:           model.OrderStatusPending,
		ApprovedBy:       approvedBy,
		CreatedAt:        now,
		ExpectedDelivery: now.Add(deliveryLeadTime(sup.DeliveryTime)),
	}

	// Dispatch to the supplier channel; no separate pending period.
	ord.Status = model.OrderStatusSent

	if _, err := s.repo.Create(ctx, ord); err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.notifier.Notify(ctx, model.NotificationOrderSent,
		fmt.Sprintf("Order for %d x %s sent to %s", ord.Quantity, ord.PartName, ord.Supplier.Name),
		orderPayload(ord),
	); err != nil {
		log.Error(ctx, "notify order sent", logger.ErrorF(err))
	}

	log.Info(ctx, "order placed",
		logger.String("order_id", ord.ID.String()),
		logger.Int64("total_price_cents", ord.TotalPriceCents),
	)

	return ord, nil
}

// Confirm moves a SENT order to CONFIRMED and records the supplier's
// reference and promised delivery date.
func (s *service) Confirm(ctx context.Context, params model.ConfirmOrderParams) (*model.PurchaseOrder, error) {
	const op = "order.service.Confirm"
	log := logger.With(
		logger.String("order_id", params.OrderID.String()),
	)

	ord, err := s.repo.OrderByID(ctx, params.OrderID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ord.Status != model.OrderStatusSent {
		log.Error(ctx, "confirm refused", logger.String("status", string(ord.Status)))
		return nil, fmt.Errorf("%s: %w: confirm requires SENT, got %s", op, model.ErrInvalidTransition, ord.Status)
	}

	ord.Status = model.OrderStatusConfirmed
	ord.ConfirmedAt = lo.ToPtr(time.Now())
	if params.SupplierReference != "" {
		ord.SupplierReference = lo.ToPtr(params.SupplierReference)
	}
	if !params.ConfirmedDelivery.IsZero() {
		ord.ConfirmedDelivery = lo.ToPtr(params.ConfirmedDelivery)
	}

	if err := s.repo.Update(ctx, ord); err != nil {
		log.Error(ctx, "repository update order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.notifier.Notify(ctx, model.NotificationOrderConfirmed,
		fmt.Sprintf("Order for %s confirmed by %s", ord.PartName, ord.Supplier.Name),
		orderPayload(ord),
	); err != nil {
		log.Error(ctx, "notify order confirmed", logger.ErrorF(err))
	}

	return ord, nil
}

// Receive credits delivered stock. Partial receipts accumulate and keep
// the order outstanding; only a complete delivery reaches RECEIVED.
func (s *service) Receive(ctx context.Context, params model.ReceiveOrderParams) (*model.PurchaseOrder, error) {
	const op = "order.service.Receive"
	log := logger.With(
		logger.String("order_id", params.OrderID.String()),
		logger.Int64("received_quantity", params.ReceivedQuantity),
	)

	if params.ReceivedQuantity <= 0 {
		log.Error(ctx, "validation: non-positive received quantity")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ord, err := s.repo.OrderByID(ctx, params.OrderID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ord.Status != model.OrderStatusConfirmed {
		log.Error(ctx, "receive refused", logger.String("status", string(ord.Status)))
		return nil, fmt.Errorf("%s: %w: receive requires CONFIRMED, got %s", op, model.ErrInvalidTransition, ord.Status)
	}

	receivedAt := params.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	total := params.ReceivedQuantity
	if ord.ReceivedQuantity != nil {
		total += *ord.ReceivedQuantity
	}
	ord.ReceivedQuantity = lo.ToPtr(total)
	ord.ReceivedAt = lo.ToPtr(receivedAt)
	if ord.Complete() {
		ord.Status = model.OrderStatusReceived
	}

	if _, err := s.inventory.RestockFromDelivery(ctx, ord.PartID, params.ReceivedQuantity, ord.UnitPriceCents); err != nil {
		log.Error(ctx, "restock from delivery", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Update(ctx, ord); err != nil {
		log.Error(ctx, "repository update order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.notifier.Notify(ctx, model.NotificationOrderReceived,
		fmt.Sprintf("Received %d x %s (complete: %t)", params.ReceivedQuantity, ord.PartName, ord.Complete()),
		orderPayload(ord),
	); err != nil {
		log.Error(ctx, "notify order received", logger.ErrorF(err))
	}

	return ord, nil
}

// Cancel aborts an order from any non-terminal state.
func (s *service) Cancel(ctx context.Context, orderID uuid.UUID) (*model.PurchaseOrder, error) {
	const op = "order.service.Cancel"
	log := logger.With(
		logger.String("order_id", orderID.String()),
	)

	ord, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ord.Status.Terminal() {
		log.Error(ctx, "cancel refused", logger.String("status", string(ord.Status)))
		return nil, fmt.Errorf("%s: %w: cannot cancel %s order", op, model.ErrInvalidTransition, ord.Status)
	}

	ord.Status = model.OrderStatusCancelled

	if err := s.repo.Update(ctx, ord); err != nil {
		log.Error(ctx, "repository update order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (s *service) OrderByID(ctx context.Context, orderID uuid.UUID) (*model.PurchaseOrder, error) {
	const op = "order.service.OrderByID"

	ord, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (s *service) List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error) {
	const op = "order.service.List"

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Outstanding(ctx context.Context, partID string) (bool, error) {
	const op = "order.service.Outstanding"

	ok, err := s.repo.HasOutstanding(ctx, partID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

func deliveryLeadTime(dt model.DeliveryTime) time.Duration {
	switch dt {
	case model.DeliveryTwoHours:
		return 2 * time.Hour
	case model.DeliveryFourHours:
		return 4 * time.Hour
	case model.DeliverySameDay:
		return 24 * time.Hour
	default:
		return 72 * time.Hour
	}
}

func orderPayload(ord *model.PurchaseOrder) map[string]any {
	return map[string]any{
		"order_id":          ord.ID.String(),
		"part_id":           ord.PartID,
		"part_name":         ord.PartName,
		"quantity":          ord.Quantity,
		"unit_price_cents":  ord.UnitPriceCents,
		"total_price_cents": ord.TotalPriceCents,
		"supplier_id":       ord.Supplier.ID,
		"status":            string(ord.Status),
		"order_type":        string(ord.Type),
	}
}
