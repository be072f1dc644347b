package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type PartRepository interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
	List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
	AdjustStock(ctx context.Context, id string, delta int64) (*model.Part, error)
	ApplyDelivery(ctx context.Context, id string, qty, unitCostCents int64) (*model.Part, error)
}

type service struct {
	repo          PartRepository
	readDBTimeout time.Duration
}

func NewInventoryService(repo PartRepository, readDBTimeout time.Duration) *service {
	return &service{repo: repo, readDBTimeout: readDBTimeout}
}

func (s *service) Part(ctx context.Context, partID string) (*model.Part, error) {
	const op = "inventory.service.Part"
	log := logger.With(
		logger.String("part_id", partID),
	)

	partID = strings.TrimSpace(partID)
	if partID == "" {
		log.Error(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrValidation, errors.New("part id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByID(ctx, partID)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *service) ListParts(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "inventory.service.ListParts"
	log := logger.With(
		logger.Int("ids_count", len(filter.IDs)),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// AdjustStock shifts the stock level by delta, clamped at zero. The
// repository recomputes the derived status under the same lock.
func (s *service) AdjustStock(ctx context.Context, partID string, delta int64) (*model.Part, error) {
	const op = "inventory.service.AdjustStock"
	log := logger.With(
		logger.String("part_id", partID),
		logger.Int64("delta", delta),
	)

	partID = strings.TrimSpace(partID)
	if partID == "" {
		log.Error(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrValidation, errors.New("part id must be non-empty"))
	}

	p, err := s.repo.AdjustStock(ctx, partID, delta)
	if err != nil {
		log.Error(ctx, "repository adjust stock", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if p.Status == model.StockStatusOutOfStock || p.Status == model.StockStatusCritical {
		log.Warn(ctx, "part below critical threshold",
			logger.Int64("current_stock", p.CurrentStock),
			logger.String("status", string(p.Status)),
		)
	}

	return p, nil
}

// RestockFromDelivery credits received quantity and folds the delivery
// price into the weighted-average cost.
func (s *service) RestockFromDelivery(ctx context.Context, partID string, qty, unitCostCents int64) (*model.Part, error) {
	const op = "inventory.service.RestockFromDelivery"
	log := logger.With(
		logger.String("part_id", partID),
		logger.Int64("quantity", qty),
	)

	if qty <= 0 {
		log.Error(ctx, "validation: non-positive delivery quantity")
		return nil, errors.Join(model.ErrValidation, errors.New("delivery quantity must be positive"))
	}

	p, err := s.repo.ApplyDelivery(ctx, partID, qty, unitCostCents)
	if err != nil {
		log.Error(ctx, "repository apply delivery", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "delivery applied",
		logger.Int64("current_stock", p.CurrentStock),
		logger.Int64("avg_cost_cents", p.AvgCostCents),
	)

	return p, nil
}

// Status builds the stock overview the dashboard renders.
func (s *service) Status(ctx context.Context) (*model.InventoryStatus, error) {
	const op = "inventory.service.Status"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	parts, err := s.repo.List(ctx, model.PartsFilter{})
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := &model.InventoryStatus{
		TotalParts:  len(parts),
		GeneratedAt: time.Now(),
	}
	for _, p := range parts {
		switch p.Status {
		case model.StockStatusInStock:
			status.InStock++
		case model.StockStatusLowStock:
			status.LowStock++
		case model.StockStatusCritical:
			status.Critical++
		case model.StockStatusOutOfStock:
			status.OutOfStock++
		}
		status.StockValueCents += p.CurrentStock * p.AvgCostCents
	}

	return status, nil
}
