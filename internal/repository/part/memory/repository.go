package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

// repository keeps parts in process memory. A single RWMutex serializes
// every stock mutation, which gives the single-writer-per-part ordering
// the stock accounting relies on.
type repository struct {
	mu    sync.RWMutex
	parts map[string]*model.Part
}

func NewPartRepository() *repository {
	return &repository{parts: make(map[string]*model.Part)}
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return clonePart(p), nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Part, 0, len(r.parts))
	for _, p := range r.parts {
		if matches(p, filter) {
			out = append(out, clonePart(p))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) error {
	const op = "part.memory.CreateBatch"

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		cp := clonePart(p)
		if cp.CreatedAt == nil || cp.CreatedAt.IsZero() {
			cp.CreatedAt = lo.ToPtr(time.Now())
		}
		cp.Status = model.StatusForStock(cp.CurrentStock, cp.MinStock)
		r.parts[cp.ID] = cp
	}

	return nil
}

// AdjustStock applies delta to the current stock, clamped at zero, and
// recomputes the derived status.
func (r *repository) AdjustStock(ctx context.Context, id string, delta int64) (*model.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	p.CurrentStock += delta
	if p.CurrentStock < 0 {
		p.CurrentStock = 0
	}
	p.Status = model.StatusForStock(p.CurrentStock, p.MinStock)
	p.UpdatedAt = lo.ToPtr(time.Now())

	return clonePart(p), nil
}

// ApplyDelivery credits received stock and folds the delivery price into
// the weighted-average cost:
//
//	newAvg = round((oldStock*oldAvg + qty*unitCost) / newStock)
func (r *repository) ApplyDelivery(ctx context.Context, id string, qty, unitCostCents int64) (*model.Part, error) {
	const op = "part.memory.ApplyDelivery"

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	oldStock := p.CurrentStock
	newStock := oldStock + qty
	p.AvgCostCents = int64(math.Round(
		float64(oldStock*p.AvgCostCents+qty*unitCostCents) / float64(newStock),
	))
	p.CurrentStock = newStock
	p.Status = model.StatusForStock(p.CurrentStock, p.MinStock)
	p.UpdatedAt = lo.ToPtr(time.Now())

	return clonePart(p), nil
}

func matches(p *model.Part, f model.PartsFilter) bool {
	if len(f.IDs) > 0 && !lo.Contains(f.IDs, p.ID) {
		return false
	}
	if len(f.Categories) > 0 && !lo.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, p.Status) {
		return false
	}
	return true
}

func clonePart(p *model.Part) *model.Part {
	cp := *p
	cp.Compatibility = append([]string(nil), p.Compatibility...)
	if p.CreatedAt != nil {
		cp.CreatedAt = lo.ToPtr(*p.CreatedAt)
	}
	if p.UpdatedAt != nil {
		cp.UpdatedAt = lo.ToPtr(*p.UpdatedAt)
	}
	return &cp
}
