package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type repository struct {
	mu            sync.RWMutex
	notifications map[string]*model.Notification
}

func NewNotificationRepository() *repository {
	return &repository{notifications: make(map[string]*model.Notification)}
}

func (r *repository) Append(ctx context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := n
	r.notifications[cp.ID] = &cp

	return nil
}

func (r *repository) List(ctx context.Context, unreadOnly bool) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, *n)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

// MarkRead flips the read flag; the only mutation notifications allow.
func (r *repository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return model.ErrNotificationNotFound
	}
	n.Read = true

	return nil
}
