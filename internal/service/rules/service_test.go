package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/service/mocks"
)

func TestServiceUpsert(t *testing.T) {
	t.Parallel()

	type deps struct {
		repo      *mocks.MockRuleRepository
		parts     *mocks.MockPartRepository
		suppliers *mocks.MockSupplierRegistry
	}

	validRule := model.ReorderRule{
		PartID:              "P-001",
		MinStock:            5,
		ReorderQuantity:     20,
		PreferredSupplierID: "SUP-001",
		MaxPriceCents:       10000,
		Priority:            model.PriorityHigh,
		AutoReorder:         true,
	}
	part := &model.Part{ID: "P-001", Name: "Brake Pads", MinStock: 5, MaxStock: 50}
	supplier := &model.Supplier{ID: "SUP-001", Name: "AutoZone Pro", Status: model.SupplierActive}

	type testCase struct {
		name    string
		rule    model.ReorderRule
		setup   func(d deps)
		wantErr error
	}

	tests := []testCase{
		{
			name: "invalid rule never reaches the repository",
			rule: func() model.ReorderRule {
				r := validRule
				r.ReorderQuantity = 0
				return r
			}(),
			setup:   func(d deps) {},
			wantErr: model.ErrValidation,
		},
		{
			name: "unknown part",
			rule: validRule,
			setup: func(d deps) {
				d.parts.On("PartByID", mock.Anything, "P-001").
					Return(nil, model.ErrPartNotFound).
					Once()
			},
			wantErr: model.ErrPartNotFound,
		},
		{
			name: "min stock above the part's max stock",
			rule: func() model.ReorderRule {
				r := validRule
				r.MinStock = 51
				return r
			}(),
			setup: func(d deps) {
				d.parts.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
			},
			wantErr: model.ErrValidation,
		},
		{
			name: "unknown preferred supplier",
			rule: validRule,
			setup: func(d deps) {
				d.parts.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
				d.suppliers.On("SupplierByID", mock.Anything, "SUP-001").
					Return(nil, model.ErrSupplierNotFound).
					Once()
			},
			wantErr: model.ErrSupplierNotFound,
		},
		{
			name: "valid rule is stored",
			rule: validRule,
			setup: func(d deps) {
				d.parts.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
				d.suppliers.On("SupplierByID", mock.Anything, "SUP-001").Return(supplier, nil).Once()
				d.repo.On("Upsert", mock.Anything, validRule).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repo:      mocks.NewMockRuleRepository(t),
				parts:     mocks.NewMockPartRepository(t),
				suppliers: mocks.NewMockSupplierRegistry(t),
			}
			tt.setup(d)

			svc := NewRulesService(d.repo, d.parts, d.suppliers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := svc.Upsert(ctx, tt.rule)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("reports whether a rule existed", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRuleRepository(t)
		repo.On("Delete", mock.Anything, "P-001").Return(true, nil).Once()
		repo.On("Delete", mock.Anything, "P-404").Return(false, nil).Once()

		svc := NewRulesService(repo, mocks.NewMockPartRepository(t), mocks.NewMockSupplierRegistry(t))

		ok, err := svc.Delete(context.Background(), "P-001")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Delete(context.Background(), "P-404")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceRule(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRuleRepository(t)
	repo.On("RuleByPartID", mock.Anything, "P-404").Return(nil, model.ErrRuleNotFound).Once()

	svc := NewRulesService(repo, mocks.NewMockPartRepository(t), mocks.NewMockSupplierRegistry(t))

	_, err := svc.Rule(context.Background(), "P-404")
	require.ErrorIs(t, err, model.ErrRuleNotFound)
}
