package usage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

const (
	taxRate     = 0.15
	invoiceTerm = 30 * 24 * time.Hour
)

type UsageRepository interface {
	Append(ctx context.Context, rec model.UsageRecord) error
	ByServiceID(ctx context.Context, serviceID string) (*model.UsageRecord, error)
	ListSince(ctx context.Context, since time.Time) ([]model.UsageRecord, error)
}

type InventoryService interface {
	Part(ctx context.Context, partID string) (*model.Part, error)
	AdjustStock(ctx context.Context, partID string, delta int64) (*model.Part, error)
}

type service struct {
	repo      UsageRepository
	inventory InventoryService
}

func NewUsageService(repo UsageRepository, inventory InventoryService) *service {
	return &service{repo: repo, inventory: inventory}
}

type RecordUsageParams struct {
	ServiceID      string
	CustomerID     string
	Vehicle        model.VehicleInfo
	Lines          []model.UsageLine
	LaborCostCents int64
}

type RecordUsageResult struct {
	Usage   model.UsageRecord
	Invoice model.Invoice
}

// RecordServiceUsage appends one service visit to the usage history and
// decrements stock for every consumed part. ServiceID is the idempotency
// key: a second record for the same service is rejected.
func (s *service) RecordServiceUsage(ctx context.Context, params RecordUsageParams) (*RecordUsageResult, error) {
	const op = "usage.service.RecordServiceUsage"
	log := logger.With(
		logger.String("service_id", params.ServiceID),
		logger.Int("lines", len(params.Lines)),
	)

	if params.ServiceID == "" || len(params.Lines) == 0 {
		log.Error(ctx, "wrong params")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	if _, err := s.repo.ByServiceID(ctx, params.ServiceID); err == nil {
		log.Warn(ctx, "duplicate service usage refused")
		return nil, fmt.Errorf("%s: %w", op, model.ErrDuplicateService)
	} else if !errors.Is(err, model.ErrUsageNotFound) {
		log.Error(ctx, "repository by service id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rec := model.UsageRecord{
		ID:             uuid.NewString(),
		ServiceID:      params.ServiceID,
		CustomerID:     params.CustomerID,
		Vehicle:        params.Vehicle,
		LaborCostCents: params.LaborCostCents,
		RecordedAt:     time.Now(),
	}

	for _, line := range params.Lines {
		if line.Quantity <= 0 {
			log.Error(ctx, "validation: non-positive line quantity", logger.String("part_id", line.PartID))
			return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
		}

		part, err := s.inventory.Part(ctx, line.PartID)
		if err != nil {
			log.Error(ctx, "part by id", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if part.CurrentStock < line.Quantity {
			log.Error(ctx, "insufficient stock for usage line",
				logger.String("part_id", line.PartID),
				logger.Int64("current_stock", part.CurrentStock),
				logger.Int64("requested", line.Quantity),
			)
			return nil, fmt.Errorf("%s: %w", op, model.ErrInsufficientStock)
		}

		unitCost := line.UnitCostCents
		if unitCost <= 0 {
			unitCost = part.AvgCostCents
		}

		rec.Lines = append(rec.Lines, model.UsageLine{
			PartID:         part.ID,
			PartName:       part.Name,
			Quantity:       line.Quantity,
			UnitCostCents:  unitCost,
			TotalCostCents: unitCost * line.Quantity,
			WarrantyPeriod: line.WarrantyPeriod,
		})
	}

	for _, line := range rec.Lines {
		if _, err := s.inventory.AdjustStock(ctx, line.PartID, -line.Quantity); err != nil {
			log.Error(ctx, "adjust stock", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rec.TotalCostCents += line.TotalCostCents
	}
	rec.TotalCostCents += rec.LaborCostCents

	if err := s.repo.Append(ctx, rec); err != nil {
		log.Error(ctx, "repository append", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RecordUsageResult{
		Usage:   rec,
		Invoice: BuildInvoice(rec),
	}, nil
}

func (s *service) UsageByServiceID(ctx context.Context, serviceID string) (*model.UsageRecord, error) {
	const op = "usage.service.UsageByServiceID"

	rec, err := s.repo.ByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (s *service) InvoiceForService(ctx context.Context, serviceID string) (*model.Invoice, error) {
	const op = "usage.service.InvoiceForService"

	rec, err := s.repo.ByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	inv := BuildInvoice(*rec)
	return &inv, nil
}

// WarrantiesForService derives the warranty state of every part line at
// the given instant.
func (s *service) WarrantiesForService(ctx context.Context, serviceID string, now time.Time) ([]model.WarrantyItem, error) {
	const op = "usage.service.WarrantiesForService"

	rec, err := s.repo.ByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]model.WarrantyItem, 0, len(rec.Lines))
	for _, line := range rec.Lines {
		item, err := DeriveWarranty(line, rec.RecordedAt, now)
		if err != nil {
			logger.Warn(ctx, "unparseable warranty period",
				logger.String("part_id", line.PartID),
				logger.String("period", line.WarrantyPeriod),
			)
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// BuildInvoice derives the invoice for one usage record: a labor line
// plus one line per part, 15% tax, net 30 terms.
func BuildInvoice(rec model.UsageRecord) model.Invoice {
	inv := model.Invoice{
		ServiceID:  rec.ServiceID,
		CustomerID: rec.CustomerID,
		CreatedAt:  rec.RecordedAt,
		DueAt:      rec.RecordedAt.Add(invoiceTerm),
	}

	if rec.LaborCostCents > 0 {
		inv.Lines = append(inv.Lines, model.InvoiceLine{
			Description: "Labor",
			Quantity:    1,
			UnitCents:   rec.LaborCostCents,
			TotalCents:  rec.LaborCostCents,
		})
	}
	for _, line := range rec.Lines {
		inv.Lines = append(inv.Lines, model.InvoiceLine{
			Description: line.PartName,
			Quantity:    line.Quantity,
			UnitCents:   line.UnitCostCents,
			TotalCents:  line.TotalCostCents,
		})
	}

	for _, line := range inv.Lines {
		inv.SubtotalCents += line.TotalCents
	}
	inv.TaxCents = int64(math.Round(float64(inv.SubtotalCents) * taxRate))
	inv.TotalCents = inv.SubtotalCents + inv.TaxCents

	return inv
}

var warrantyRe = regexp.MustCompile(`^\s*(\d+)\s*(month|months|year|years)\s*$`)

// ParseWarrantyMonths turns a human period like "12 months" or "2 years"
// into whole months.
func ParseWarrantyMonths(period string) (int, error) {
	m := warrantyRe.FindStringSubmatch(strings.ToLower(period))
	if m == nil {
		return 0, fmt.Errorf("parse warranty period %q: %w", period, model.ErrValidation)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("parse warranty period %q: %w", period, model.ErrValidation)
	}

	if strings.HasPrefix(m[2], "year") {
		n *= 12
	}

	return n, nil
}

// DeriveWarranty computes expiry and remaining days for one usage line.
// The warranty is active strictly before the expiry instant.
func DeriveWarranty(line model.UsageLine, serviceDate, now time.Time) (model.WarrantyItem, error) {
	months, err := ParseWarrantyMonths(line.WarrantyPeriod)
	if err != nil {
		return model.WarrantyItem{}, err
	}

	expiry := serviceDate.AddDate(0, months, 0)

	daysRemaining := 0
	if remaining := expiry.Sub(now); remaining > 0 {
		daysRemaining = int(math.Ceil(remaining.Hours() / 24))
	}

	return model.WarrantyItem{
		PartID:        line.PartID,
		PartName:      line.PartName,
		ServiceDate:   serviceDate,
		Months:        months,
		ExpiresAt:     expiry,
		Active:        now.Before(expiry),
		DaysRemaining: daysRemaining,
	}, nil
}
