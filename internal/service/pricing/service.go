package pricing

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type PartProvider interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
}

type SupplierRegistry interface {
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context, activeOnly bool) ([]model.Supplier, error)
}

// service simulates per-supplier price fetches. A real integration would
// call supplier APIs here; the contract stays the same: zero or more
// priced, timestamped quotes sorted ascending by price.
type service struct {
	parts     PartProvider
	suppliers SupplierRegistry

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPricingService(parts PartProvider, suppliers SupplierRegistry, rnd *rand.Rand) *service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &service{parts: parts, suppliers: suppliers, rnd: rnd}
}

// Quotes returns one quote per active supplier, cheapest first.
func (s *service) Quotes(ctx context.Context, partID string) ([]model.PriceQuote, error) {
	const op = "pricing.service.Quotes"
	log := logger.With(
		logger.String("part_id", partID),
	)

	part, err := s.parts.PartByID(ctx, partID)
	if err != nil {
		log.Error(ctx, "part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	suppliers, err := s.suppliers.List(ctx, true)
	if err != nil {
		log.Error(ctx, "list suppliers", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	quotes := make([]model.PriceQuote, 0, len(suppliers))
	for _, sup := range suppliers {
		quotes = append(quotes, s.quoteFor(part, sup, now))
	}

	sort.Slice(quotes, func(i, j int) bool { return quotes[i].PriceCents < quotes[j].PriceCents })

	return quotes, nil
}

// QuoteFromSupplier prices the part at a single supplier. Used by the
// reordering monitor, which only consults the rule's preferred supplier.
func (s *service) QuoteFromSupplier(ctx context.Context, partID, supplierID string) (*model.PriceQuote, error) {
	const op = "pricing.service.QuoteFromSupplier"
	log := logger.With(
		logger.String("part_id", partID),
		logger.String("supplier_id", supplierID),
	)

	part, err := s.parts.PartByID(ctx, partID)
	if err != nil {
		log.Error(ctx, "part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sup, err := s.suppliers.SupplierByID(ctx, supplierID)
	if err != nil {
		log.Error(ctx, "supplier by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := s.quoteFor(part, *sup, time.Now())

	return &q, nil
}

func (s *service) quoteFor(part *model.Part, sup model.Supplier, now time.Time) model.PriceQuote {
	s.mu.Lock()
	// ±10% market jitter around the part's average cost.
	jitter := 1 + (s.rnd.Float64()*0.2 - 0.1)
	available := s.rnd.Float64() < sup.Reliability
	units := int64(0)
	if available {
		units = 10 + s.rnd.Int63n(51) // 10..60
	}
	s.mu.Unlock()

	price := int64(math.Round(float64(part.AvgCostCents) * jitter * sup.PriceMultiplier))

	return model.PriceQuote{
		SupplierID:   sup.ID,
		SupplierName: sup.Name,
		PriceCents:   price,
		Availability: units,
		DeliveryTime: sup.DeliveryTime,
		FetchedAt:    now,
	}
}
