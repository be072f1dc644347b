package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

type repository struct {
	mu    sync.RWMutex
	rules map[string]model.ReorderRule
}

func NewRuleRepository() *repository {
	return &repository{rules: make(map[string]model.ReorderRule)}
}

func (r *repository) RuleByPartID(ctx context.Context, partID string) (*model.ReorderRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[partID]
	if !ok {
		return nil, model.ErrRuleNotFound
	}

	return &rule, nil
}

func (r *repository) List(ctx context.Context) ([]model.ReorderRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ReorderRule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PartID < out[j].PartID })

	return out, nil
}

func (r *repository) Upsert(ctx context.Context, rule model.ReorderRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[rule.PartID] = rule

	return nil
}

func (r *repository) Delete(ctx context.Context, partID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rules[partID]
	delete(r.rules, partID)

	return ok, nil
}
