package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type RuleRepository interface {
	RuleByPartID(ctx context.Context, partID string) (*model.ReorderRule, error)
	List(ctx context.Context) ([]model.ReorderRule, error)
	Upsert(ctx context.Context, rule model.ReorderRule) error
	Delete(ctx context.Context, partID string) (bool, error)
}

type PartProvider interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
}

type SupplierProvider interface {
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
}

type service struct {
	repo      RuleRepository
	parts     PartProvider
	suppliers SupplierProvider
}

func NewRulesService(repo RuleRepository, parts PartProvider, suppliers SupplierProvider) *service {
	return &service{repo: repo, parts: parts, suppliers: suppliers}
}

func (s *service) Rule(ctx context.Context, partID string) (*model.ReorderRule, error) {
	const op = "rules.service.Rule"

	rule, err := s.repo.RuleByPartID(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rule, nil
}

func (s *service) List(ctx context.Context) ([]model.ReorderRule, error) {
	const op = "rules.service.List"

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Upsert validates the rule against the part and supplier it references
// before storing it. MinStock must not exceed the part's MaxStock.
func (s *service) Upsert(ctx context.Context, rule model.ReorderRule) error {
	const op = "rules.service.Upsert"
	log := logger.With(
		logger.String("part_id", rule.PartID),
	)

	if err := rule.Validate(); err != nil {
		log.Error(ctx, "rule validation", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	part, err := s.parts.PartByID(ctx, rule.PartID)
	if err != nil {
		log.Error(ctx, "part by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if rule.MinStock > part.MaxStock {
		log.Error(ctx, "rule min stock above part max stock",
			logger.Int64("min_stock", rule.MinStock),
			logger.Int64("max_stock", part.MaxStock),
		)
		return errors.Join(model.ErrValidation, errors.New("min stock must not exceed part max stock"))
	}

	if _, err := s.suppliers.SupplierByID(ctx, rule.PreferredSupplierID); err != nil {
		log.Error(ctx, "preferred supplier by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Upsert(ctx, rule); err != nil {
		log.Error(ctx, "repository upsert rule", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, partID string) (bool, error) {
	const op = "rules.service.Delete"

	ok, err := s.repo.Delete(ctx, partID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}
