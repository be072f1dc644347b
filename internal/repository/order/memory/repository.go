package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*model.PurchaseOrder
}

func NewOrderRepository() *repository {
	return &repository{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *repository) Create(ctx context.Context, ord *model.PurchaseOrder) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ord.ID == uuid.Nil {
		ord.ID = uuid.New()
	}
	cp := *ord
	r.orders[cp.ID] = &cp

	return cp.ID, nil
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ord, ok := r.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}

	cp := *ord
	return &cp, nil
}

func (r *repository) Update(ctx context.Context, upd *model.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[upd.ID]; !ok {
		return model.ErrOrderNotFound
	}

	cp := *upd
	r.orders[cp.ID] = &cp

	return nil
}

func (r *repository) List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, ord := range r.orders {
		if filter.PartID != "" && ord.PartID != filter.PartID {
			continue
		}
		if len(filter.Statuses) > 0 && !lo.Contains(filter.Statuses, ord.Status) {
			continue
		}
		if filter.Type != "" && ord.Type != filter.Type {
			continue
		}
		out = append(out, *ord)
	}

	// Newest first, like the shop's order history screen.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

// HasOutstanding reports whether a pending, sent, or confirmed order
// exists for the part. This is the guard that prevents duplicate
// reorders between the monitor sweep and manual actions.
func (r *repository) HasOutstanding(ctx context.Context, partID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.PartID == partID && ord.Status.Outstanding() {
			return true, nil
		}
	}

	return false, nil
}
