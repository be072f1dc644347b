package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

// repository is the seeded, read-mostly supplier registry.
type repository struct {
	mu        sync.RWMutex
	suppliers map[string]model.Supplier
}

func NewSupplierRepository() *repository {
	return &repository{suppliers: make(map[string]model.Supplier)}
}

func (r *repository) SupplierByID(ctx context.Context, id string) (*model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.suppliers[id]
	if !ok {
		return nil, model.ErrSupplierNotFound
	}

	return &s, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if activeOnly && s.Status != model.SupplierActive {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *repository) CreateBatch(ctx context.Context, suppliers []model.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range suppliers {
		if s.ID == "" {
			continue
		}
		r.suppliers[s.ID] = s
	}

	return nil
}
