package inventory

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

const testReadTimeout = time.Second

func TestServicePart(t *testing.T) {
	t.Parallel()

	part := &model.Part{ID: "P-001", Name: "Brake Pads", CurrentStock: 12, MinStock: 5}

	type testCase struct {
		name   string
		partID string
		setup  func(repo *mocks.MockPartRepository)
		assert func(t *testing.T, p *model.Part, err error)
	}

	tests := []testCase{
		{
			name:   "empty id is rejected without touching the repository",
			partID: "   ",
			setup:  func(repo *mocks.MockPartRepository) {},
			assert: func(t *testing.T, p *model.Part, err error) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, p)
			},
		},
		{
			name:   "id is trimmed before lookup",
			partID: " P-001 ",
			setup: func(repo *mocks.MockPartRepository) {
				repo.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
			},
			assert: func(t *testing.T, p *model.Part, err error) {
				require.NoError(t, err)
				assert.Equal(t, part, p)
			},
		},
		{
			name:   "unknown part",
			partID: "P-404",
			setup: func(repo *mocks.MockPartRepository) {
				repo.On("PartByID", mock.Anything, "P-404").Return(nil, model.ErrPartNotFound).Once()
			},
			assert: func(t *testing.T, p *model.Part, err error) {
				require.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, p)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockPartRepository(t)
			tt.setup(repo)

			svc := NewInventoryService(repo, testReadTimeout)

			p, err := svc.Part(context.Background(), tt.partID)
			tt.assert(t, p, err)
		})
	}
}

func TestServiceAdjustStock(t *testing.T) {
	t.Parallel()

	t.Run("empty id is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewInventoryService(mocks.NewMockPartRepository(t), testReadTimeout)

		_, err := svc.AdjustStock(context.Background(), "  ", 5)
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("delta is passed through", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("AdjustStock", mock.Anything, "P-001", int64(-3)).
			Return(&model.Part{ID: "P-001", CurrentStock: 2, MinStock: 5, Status: model.StockStatusCritical}, nil).
			Once()

		svc := NewInventoryService(repo, testReadTimeout)

		p, err := svc.AdjustStock(context.Background(), "P-001", -3)
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.CurrentStock)
		assert.Equal(t, model.StockStatusCritical, p.Status)
	})
}

func TestServiceRestockFromDelivery(t *testing.T) {
	t.Parallel()

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewInventoryService(mocks.NewMockPartRepository(t), testReadTimeout)

		_, err := svc.RestockFromDelivery(context.Background(), "P-001", 0, 100)
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("delivery reaches the repository", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("ApplyDelivery", mock.Anything, "P-001", int64(20), int64(4500)).
			Return(&model.Part{ID: "P-001", CurrentStock: 32, AvgCostCents: 4400}, nil).
			Once()

		svc := NewInventoryService(repo, testReadTimeout)

		p, err := svc.RestockFromDelivery(context.Background(), "P-001", 20, 4500)
		require.NoError(t, err)
		assert.Equal(t, int64(32), p.CurrentStock)
	})
}

func TestServiceStatus(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockPartRepository(t)
	repo.On("List", mock.Anything, model.PartsFilter{}).
		Return([]*model.Part{
			{ID: "P-1", CurrentStock: 50, AvgCostCents: 100, Status: model.StockStatusInStock},
			{ID: "P-2", CurrentStock: 6, AvgCostCents: 200, Status: model.StockStatusLowStock},
			{ID: "P-3", CurrentStock: 1, AvgCostCents: 300, Status: model.StockStatusCritical},
			{ID: "P-4", CurrentStock: 0, AvgCostCents: 400, Status: model.StockStatusOutOfStock},
			{ID: "P-5", CurrentStock: 10, AvgCostCents: 50, Status: model.StockStatusInStock},
		}, nil).
		Once()

	svc := NewInventoryService(repo, testReadTimeout)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status)

	assert.Equal(t, 5, status.TotalParts)
	assert.Equal(t, 2, status.InStock)
	assert.Equal(t, 1, status.LowStock)
	assert.Equal(t, 1, status.Critical)
	assert.Equal(t, 1, status.OutOfStock)
	assert.Equal(t, int64(50*100+6*200+1*300+10*50), status.StockValueCents)
	assert.WithinDuration(t, time.Now(), status.GeneratedAt, time.Second)
}
