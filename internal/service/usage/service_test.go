package usage

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

func TestServiceRecordServiceUsage(t *testing.T) {
	t.Parallel()

	type deps struct {
		repo      *mocks.MockUsageRepository
		inventory *mocks.MockInventoryService
	}

	brakePads := &model.Part{
		ID:           "P-001",
		Name:         "Brake Pads",
		CurrentStock: 20,
		MinStock:     5,
		AvgCostCents: 4500,
	}
	oilFilter := &model.Part{
		ID:           "P-002",
		Name:         "Oil Filter",
		CurrentStock: 1,
		MinStock:     3,
		AvgCostCents: 800,
	}

	type testCase struct {
		name   string
		params RecordUsageParams
		setup  func(d deps)
		assert func(t *testing.T, res *RecordUsageResult, err error)
	}

	tests := []testCase{
		{
			name:   "empty service id is rejected",
			params: RecordUsageParams{Lines: []model.UsageLine{{PartID: "P-001", Quantity: 1}}},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "no lines is rejected",
			params: RecordUsageParams{ServiceID: "SVC-1"},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "duplicate service id is refused",
			params: RecordUsageParams{
				ServiceID: "SVC-1",
				Lines:     []model.UsageLine{{PartID: "P-001", Quantity: 1}},
			},
			setup: func(d deps) {
				d.repo.On("ByServiceID", mock.Anything, "SVC-1").
					Return(&model.UsageRecord{ServiceID: "SVC-1"}, nil).
					Once()
			},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.ErrorIs(t, err, model.ErrDuplicateService)
				assert.Nil(t, res)
			},
		},
		{
			name: "non-positive line quantity is rejected",
			params: RecordUsageParams{
				ServiceID: "SVC-1",
				Lines:     []model.UsageLine{{PartID: "P-001", Quantity: 0}},
			},
			setup: func(d deps) {
				d.repo.On("ByServiceID", mock.Anything, "SVC-1").
					Return(nil, model.ErrUsageNotFound).
					Once()
			},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "insufficient stock aborts before any adjustment",
			params: RecordUsageParams{
				ServiceID: "SVC-1",
				Lines:     []model.UsageLine{{PartID: "P-002", Quantity: 2}},
			},
			setup: func(d deps) {
				d.repo.On("ByServiceID", mock.Anything, "SVC-1").
					Return(nil, model.ErrUsageNotFound).
					Once()
				d.inventory.On("Part", mock.Anything, "P-002").
					Return(oilFilter, nil).
					Once()
			},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.ErrorIs(t, err, model.ErrInsufficientStock)
				assert.Nil(t, res)
			},
		},
		{
			name: "success decrements stock and prices the invoice",
			params: RecordUsageParams{
				ServiceID:      "SVC-1",
				CustomerID:     "CUST-42",
				Vehicle:        model.VehicleInfo{Make: "Toyota", Model: "Camry", Year: 2021},
				LaborCostCents: 5000,
				Lines: []model.UsageLine{
					// Zero unit cost falls back to the part's average cost.
					{PartID: "P-001", Quantity: 2, WarrantyPeriod: "12 months"},
				},
			},
			setup: func(d deps) {
				d.repo.On("ByServiceID", mock.Anything, "SVC-1").
					Return(nil, model.ErrUsageNotFound).
					Once()
				d.inventory.On("Part", mock.Anything, "P-001").
					Return(brakePads, nil).
					Once()
				d.inventory.On("AdjustStock", mock.Anything, "P-001", int64(-2)).
					Return(brakePads, nil).
					Once()
				d.repo.
					On("Append", mock.Anything, mock.MatchedBy(func(rec model.UsageRecord) bool {
						return rec.ServiceID == "SVC-1" &&
							rec.ID != "" &&
							len(rec.Lines) == 1 &&
							rec.Lines[0].UnitCostCents == 4500 &&
							rec.Lines[0].TotalCostCents == 9000 &&
							rec.TotalCostCents == 14000
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *RecordUsageResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, "Brake Pads", res.Usage.Lines[0].PartName)
				assert.Equal(t, int64(14000), res.Usage.TotalCostCents)

				// Labor line plus one part line, 15% tax on top.
				require.Len(t, res.Invoice.Lines, 2)
				assert.Equal(t, "Labor", res.Invoice.Lines[0].Description)
				assert.Equal(t, int64(14000), res.Invoice.SubtotalCents)
				assert.Equal(t, int64(2100), res.Invoice.TaxCents)
				assert.Equal(t, int64(16100), res.Invoice.TotalCents)
				assert.Equal(t, res.Usage.RecordedAt.Add(30*24*time.Hour), res.Invoice.DueAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repo:      mocks.NewMockUsageRepository(t),
				inventory: mocks.NewMockInventoryService(t),
			}
			tt.setup(d)

			svc := NewUsageService(d.repo, d.inventory)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.RecordServiceUsage(ctx, tt.params)
			tt.assert(t, res, err)
		})
	}
}

func TestBuildInvoice(t *testing.T) {
	t.Parallel()

	recorded := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := model.UsageRecord{
		ServiceID:      "SVC-7",
		CustomerID:     "CUST-9",
		LaborCostCents: 1000,
		RecordedAt:     recorded,
		Lines: []model.UsageLine{
			{PartName: "Air Filter", Quantity: 1, UnitCostCents: 1500, TotalCostCents: 1500},
			{PartName: "Spark Plug", Quantity: 4, UnitCostCents: 700, TotalCostCents: 2800},
		},
	}

	inv := BuildInvoice(rec)

	require.Len(t, inv.Lines, 3)
	assert.Equal(t, int64(5300), inv.SubtotalCents)
	assert.Equal(t, int64(795), inv.TaxCents)
	assert.Equal(t, int64(6095), inv.TotalCents)
	assert.Equal(t, recorded, inv.CreatedAt)
	assert.Equal(t, recorded.AddDate(0, 0, 30), inv.DueAt)
}

func TestBuildInvoiceSkipsZeroLabor(t *testing.T) {
	t.Parallel()

	inv := BuildInvoice(model.UsageRecord{
		Lines: []model.UsageLine{
			{PartName: "Wiper Blades", Quantity: 1, UnitCostCents: 900, TotalCostCents: 900},
		},
	})

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Wiper Blades", inv.Lines[0].Description)
}

func TestParseWarrantyMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period  string
		months  int
		wantErr bool
	}{
		{period: "12 months", months: 12},
		{period: "1 month", months: 1},
		{period: "2 years", months: 24},
		{period: "1 year", months: 12},
		{period: "  6 MONTHS ", months: 6},
		{period: "forever", wantErr: true},
		{period: "", wantErr: true},
		{period: "12 days", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			t.Parallel()

			months, err := ParseWarrantyMonths(tt.period)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.months, months)
		})
	}
}

func TestDeriveWarranty(t *testing.T) {
	t.Parallel()

	serviceDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	line := model.UsageLine{PartID: "P-001", PartName: "Brake Pads", WarrantyPeriod: "12 months"}

	t.Run("active before expiry", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

		item, err := DeriveWarranty(line, serviceDate, now)
		require.NoError(t, err)

		assert.Equal(t, 12, item.Months)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), item.ExpiresAt)
		assert.True(t, item.Active)
		assert.Equal(t, 31, item.DaysRemaining)
	})

	t.Run("expired at the expiry instant", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

		item, err := DeriveWarranty(line, serviceDate, now)
		require.NoError(t, err)

		assert.False(t, item.Active)
		assert.Zero(t, item.DaysRemaining)
	})

	t.Run("unparseable period", func(t *testing.T) {
		t.Parallel()

		bad := line
		bad.WarrantyPeriod = "lifetime"

		_, err := DeriveWarranty(bad, serviceDate, time.Now())
		require.ErrorIs(t, err, model.ErrValidation)
	})
}
