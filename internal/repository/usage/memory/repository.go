package memory

import (
	"context"
	"sync"
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

// repository is the append-only usage history. Records are never updated
// or deleted once appended.
type repository struct {
	mu      sync.RWMutex
	records []model.UsageRecord
	byID    map[string]int
}

func NewUsageRepository() *repository {
	return &repository{byID: make(map[string]int)}
}

func (r *repository) Append(ctx context.Context, rec model.UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.ServiceID]; ok {
		return model.ErrDuplicateService
	}

	r.byID[rec.ServiceID] = len(r.records)
	r.records = append(r.records, rec)

	return nil
}

func (r *repository) ByServiceID(ctx context.Context, serviceID string) (*model.UsageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[serviceID]
	if !ok {
		return nil, model.ErrUsageNotFound
	}

	rec := r.records[idx]
	return &rec, nil
}

// ListSince returns every record at or after since, oldest first.
func (r *repository) ListSince(ctx context.Context, since time.Time) ([]model.UsageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.UsageRecord, 0, len(r.records))
	for _, rec := range r.records {
		if rec.RecordedAt.Before(since) {
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}
