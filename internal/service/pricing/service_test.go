package pricing

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/service/mocks"
)

func TestServiceQuotes(t *testing.T) {
	t.Parallel()

	part := &model.Part{ID: "P-001", Name: "Brake Pads", AvgCostCents: 10000}
	cheap := model.Supplier{
		ID:              "SUP-001",
		Name:            "AutoZone Pro",
		Reliability:     1.0,
		PriceMultiplier: 0.95,
		DeliveryTime:    model.DeliveryFourHours,
		Status:          model.SupplierActive,
	}
	premium := model.Supplier{
		ID:              "SUP-002",
		Name:            "Bosch Direct",
		Reliability:     1.0,
		PriceMultiplier: 1.25,
		DeliveryTime:    model.DeliveryTwoHours,
		Status:          model.SupplierActive,
	}

	parts := mocks.NewMockPartRepository(t)
	suppliers := mocks.NewMockSupplierRegistry(t)

	parts.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
	// The registry is asked for active suppliers only.
	suppliers.On("List", mock.Anything, true).Return([]model.Supplier{premium, cheap}, nil).Once()

	svc := NewPricingService(parts, suppliers, rand.New(rand.NewSource(1)))

	quotes, err := svc.Quotes(context.Background(), "P-001")
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.True(t, sort.SliceIsSorted(quotes, func(i, j int) bool {
		return quotes[i].PriceCents < quotes[j].PriceCents
	}))

	byID := make(map[string]model.PriceQuote, len(quotes))
	for _, q := range quotes {
		byID[q.SupplierID] = q
	}

	for _, sup := range []model.Supplier{cheap, premium} {
		q, ok := byID[sup.ID]
		require.True(t, ok)

		// Quoted price is the average cost with at most ±10% market
		// jitter, scaled by the supplier's multiplier.
		lo := int64(math.Round(float64(part.AvgCostCents) * 0.9 * sup.PriceMultiplier))
		hi := int64(math.Round(float64(part.AvgCostCents) * 1.1 * sup.PriceMultiplier))
		assert.GreaterOrEqual(t, q.PriceCents, lo)
		assert.LessOrEqual(t, q.PriceCents, hi)

		// Fully reliable suppliers always have units on hand.
		assert.GreaterOrEqual(t, q.Availability, int64(10))
		assert.LessOrEqual(t, q.Availability, int64(60))

		assert.Equal(t, sup.Name, q.SupplierName)
		assert.Equal(t, sup.DeliveryTime, q.DeliveryTime)
		assert.WithinDuration(t, time.Now(), q.FetchedAt, time.Second)
	}
}

func TestServiceQuotesUnknownPart(t *testing.T) {
	t.Parallel()

	parts := mocks.NewMockPartRepository(t)
	parts.On("PartByID", mock.Anything, "P-404").Return(nil, model.ErrPartNotFound).Once()

	svc := NewPricingService(parts, mocks.NewMockSupplierRegistry(t), rand.New(rand.NewSource(1)))

	_, err := svc.Quotes(context.Background(), "P-404")
	require.ErrorIs(t, err, model.ErrPartNotFound)
}

func TestServiceQuoteFromSupplier(t *testing.T) {
	t.Parallel()

	part := &model.Part{ID: "P-001", Name: "Brake Pads", AvgCostCents: 4000}
	unreliable := model.Supplier{
		ID:              "SUP-003",
		Name:            "Cheap Parts Co",
		Reliability:     0,
		PriceMultiplier: 0.8,
		DeliveryTime:    model.DeliveryOther,
		Status:          model.SupplierActive,
	}

	parts := mocks.NewMockPartRepository(t)
	suppliers := mocks.NewMockSupplierRegistry(t)

	parts.On("PartByID", mock.Anything, "P-001").Return(part, nil).Once()
	suppliers.On("SupplierByID", mock.Anything, "SUP-003").Return(&unreliable, nil).Once()

	svc := NewPricingService(parts, suppliers, rand.New(rand.NewSource(1)))

	q, err := svc.QuoteFromSupplier(context.Background(), "P-001", "SUP-003")
	require.NoError(t, err)
	require.NotNil(t, q)

	assert.Equal(t, "SUP-003", q.SupplierID)
	// Zero reliability means the supplier never has stock.
	assert.Zero(t, q.Availability)
	assert.Positive(t, q.PriceCents)
}

func TestServiceQuoteFromSupplierUnknownSupplier(t *testing.T) {
	t.Parallel()

	parts := mocks.NewMockPartRepository(t)
	suppliers := mocks.NewMockSupplierRegistry(t)

	parts.On("PartByID", mock.Anything, "P-001").
		Return(&model.Part{ID: "P-001", AvgCostCents: 100}, nil).
		Once()
	suppliers.On("SupplierByID", mock.Anything, "SUP-404").
		Return(nil, model.ErrSupplierNotFound).
		Once()

	svc := NewPricingService(parts, suppliers, rand.New(rand.NewSource(1)))

	_, err := svc.QuoteFromSupplier(context.Background(), "P-001", "SUP-404")
	require.ErrorIs(t, err, model.ErrSupplierNotFound)
}
