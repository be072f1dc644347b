package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
)

const ordersTable = "purchase_orders"

var orderColumns = []string{
	"id", "part_id", "part_name", "quantity", "unit_price_cents",
	"total_price_cents", "supplier_id", "supplier_name",
	"supplier_delivery_time", "order_type", "priority", "status",
	"approved_by", "created_at", "expected_delivery", "confirmed_at",
	"supplier_reference", "confirmed_delivery", "received_at",
	"received_quantity",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, ord *model.PurchaseOrder) (uuid.UUID, error) {
	if ord.ID == uuid.Nil {
		ord.ID = uuid.New()
	}

	q := r.sb.
		Insert(ordersTable).
		Columns(orderColumns...).
		Values(
			ord.ID, ord.PartID, ord.PartName, ord.Quantity, ord.UnitPriceCents,
			ord.TotalPriceCents, ord.Supplier.ID, ord.Supplier.Name,
			ord.Supplier.DeliveryTime, ord.Type, ord.Priority, ord.Status,
			ord.ApprovedBy, ord.CreatedAt, ord.ExpectedDelivery, ord.ConfirmedAt,
			ord.SupplierReference, ord.ConfirmedDelivery, ord.ReceivedAt,
			ord.ReceivedQuantity,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var orderID uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&orderID); err != nil {
		return uuid.Nil, err
	}

	return orderID, nil
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	q := r.sb.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	ord, err := scanOrder(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	return ord, nil
}

func (r *repository) Update(ctx context.Context, upd *model.PurchaseOrder) error {
	if upd.ID == uuid.Nil {
		return errors.New("empty order id")
	}

	q := r.sb.
		Update(ordersTable).
		SetMap(sq.Eq{
			"status":             upd.Status,
			"confirmed_at":       upd.ConfirmedAt,
			"supplier_reference": upd.SupplierReference,
			"confirmed_delivery": upd.ConfirmedDelivery,
			"received_at":        upd.ReceivedAt,
			"received_quantity":  upd.ReceivedQuantity,
		}).
		Where(sq.Eq{"id": upd.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error) {
	q := r.sb.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("created_at DESC")

	if filter.PartID != "" {
		q = q.Where(sq.Eq{"part_id": filter.PartID})
	}
	if len(filter.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": filter.Statuses})
	}
	if filter.Type != "" {
		q = q.Where(sq.Eq{"order_type": filter.Type})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PurchaseOrder, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ord)
	}

	return out, rows.Err()
}

func (r *repository) HasOutstanding(ctx context.Context, partID string) (bool, error) {
	q := r.sb.
		Select("1").
		From(ordersTable).
		Where(sq.Eq{
			"part_id": partID,
			"status": []model.OrderStatus{
				model.OrderStatusPending,
				model.OrderStatusSent,
				model.OrderStatusConfirmed,
			},
		}).
		Limit(1)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.PurchaseOrder, error) {
	var ord model.PurchaseOrder
	err := row.Scan(
		&ord.ID,
		&ord.PartID,
		&ord.PartName,
		&ord.Quantity,
		&ord.UnitPriceCents,
		&ord.TotalPriceCents,
		&ord.Supplier.ID,
		&ord.Supplier.Name,
		&ord.Supplier.DeliveryTime,
		&ord.Type,
		&ord.Priority,
		&ord.Status,
		&ord.ApprovedBy,
		&ord.CreatedAt,
		&ord.ExpectedDelivery,
		&ord.ConfirmedAt,
		&ord.SupplierReference,
		&ord.ConfirmedDelivery,
		&ord.ReceivedAt,
		&ord.ReceivedQuantity,
	)
	if err != nil {
		return nil, err
	}

	return &ord, nil
}
