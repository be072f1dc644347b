package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

func seed(t *testing.T) *repository {
	t.Helper()

	repo := NewPartRepository()
	err := repo.CreateBatch(context.Background(), []*model.Part{
		{
			ID:           "P-001",
			Name:         "Brake Pads",
			Category:     "brakes",
			CurrentStock: 10,
			MinStock:     5,
			MaxStock:     50,
			AvgCostCents: 100,
		},
		{
			ID:           "P-002",
			Name:         "Air Filter",
			Category:     "filters",
			CurrentStock: 0,
			MinStock:     3,
			MaxStock:     30,
			AvgCostCents: 800,
		},
	})
	require.NoError(t, err)

	return repo
}

func TestRepositoryPartByID(t *testing.T) {
	t.Parallel()

	repo := seed(t)
	ctx := context.Background()

	p, err := repo.PartByID(ctx, "P-001")
	require.NoError(t, err)
	assert.Equal(t, "Brake Pads", p.Name)
	assert.Equal(t, model.StockStatusInStock, p.Status)
	assert.NotNil(t, p.CreatedAt)

	// The stored part is isolated from the returned copy.
	p.CurrentStock = 999
	again, err := repo.PartByID(ctx, "P-001")
	require.NoError(t, err)
	assert.Equal(t, int64(10), again.CurrentStock)

	_, err = repo.PartByID(ctx, "P-404")
	require.ErrorIs(t, err, model.ErrPartNotFound)
}

func TestRepositoryCreateBatchRequiresID(t *testing.T) {
	t.Parallel()

	repo := NewPartRepository()

	err := repo.CreateBatch(context.Background(), []*model.Part{{Name: "No ID"}})
	require.Error(t, err)
}

func TestRepositoryList(t *testing.T) {
	t.Parallel()

	repo := seed(t)
	ctx := context.Background()

	t.Run("no filter, sorted by name", func(t *testing.T) {
		out, err := repo.List(ctx, model.PartsFilter{})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Air Filter", out[0].Name)
		assert.Equal(t, "Brake Pads", out[1].Name)
	})

	t.Run("by category", func(t *testing.T) {
		out, err := repo.List(ctx, model.PartsFilter{Categories: []string{"brakes"}})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "P-001", out[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		out, err := repo.List(ctx, model.PartsFilter{Statuses: []model.StockStatus{model.StockStatusOutOfStock}})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "P-002", out[0].ID)
	})

	t.Run("by ids", func(t *testing.T) {
		out, err := repo.List(ctx, model.PartsFilter{IDs: []string{"P-002", "P-404"}})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "P-002", out[0].ID)
	})
}

func TestRepositoryAdjustStock(t *testing.T) {
	t.Parallel()

	repo := seed(t)
	ctx := context.Background()

	p, err := repo.AdjustStock(ctx, "P-001", -6)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.CurrentStock)
	assert.Equal(t, model.StockStatusCritical, p.Status)
	assert.NotNil(t, p.UpdatedAt)

	// Stock never goes below zero.
	p, err = repo.AdjustStock(ctx, "P-001", -100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.CurrentStock)
	assert.Equal(t, model.StockStatusOutOfStock, p.Status)

	_, err = repo.AdjustStock(ctx, "P-404", 1)
	require.ErrorIs(t, err, model.ErrPartNotFound)
}

func TestRepositoryApplyDelivery(t *testing.T) {
	t.Parallel()

	repo := seed(t)
	ctx := context.Background()

	// 10 units at 100 plus 10 delivered at 200 averages to 150.
	p, err := repo.ApplyDelivery(ctx, "P-001", 10, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p.CurrentStock)
	assert.Equal(t, int64(150), p.AvgCostCents)
	assert.Equal(t, model.StockStatusInStock, p.Status)

	// Delivery into empty stock adopts the delivery price.
	p, err = repo.ApplyDelivery(ctx, "P-002", 5, 900)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.CurrentStock)
	assert.Equal(t, int64(900), p.AvgCostCents)

	_, err = repo.ApplyDelivery(ctx, "P-001", 0, 100)
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = repo.ApplyDelivery(ctx, "P-404", 1, 100)
	require.ErrorIs(t, err, model.ErrPartNotFound)
}
