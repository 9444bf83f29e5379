package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (number, client_id, inventory_id, total_price_cents, paid_cents, remaining_cents, status, discount_type, discount_value, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		o.Number, o.ClientID, o.InventoryID, o.TotalPriceCents, o.PaidCents, o.RemainingCents,
		o.Status, string(o.DiscountType), o.DiscountValue, o.Notes, now, now).Scan(&o.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o := &domain.Order{}
	var discountType string
	query := `SELECT id, number, client_id, inventory_id, total_price_cents, paid_cents, remaining_cents, status, discount_type, discount_value, notes, created_on, updated_on
	          FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.ClientID, &o.InventoryID, &o.TotalPriceCents, &o.PaidCents, &o.RemainingCents,
		&o.Status, &discountType, &o.DiscountValue, &o.Notes, &o.CreatedOn, &o.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("order %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	o.DiscountType = domain.DiscountType(discountType)
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET total_price_cents=$1, paid_cents=$2, remaining_cents=$3, status=$4, discount_type=$5, discount_value=$6, notes=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		o.TotalPriceCents, o.PaidCents, o.RemainingCents, o.Status,
		string(o.DiscountType), o.DiscountValue, o.Notes, time.Now(), o.ID)
	return err
}

func (r *orderRepository) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, cloth_id, price_cents, type, status, days_of_rent, delivery_date, discount_type, discount_value, returnable
	          FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		var discountType string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ClothID, &it.PriceCents, &it.Type, &it.Status,
			&it.DaysOfRent, &it.DeliveryDate, &discountType, &it.DiscountValue, &it.Returnable); err != nil {
			return nil, err
		}
		it.DiscountType = domain.DiscountType(discountType)
		items = append(items, it)
	}
	return items, rows.Err()
}

// ReplaceItems swaps the order's item set wholesale. Runs inside the item
// update transaction, so the delete+insert pair is atomic.
func (r *orderRepository) ReplaceItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return err
	}
	query := `INSERT INTO order_items (order_id, cloth_id, price_cents, type, status, days_of_rent, delivery_date, discount_type, discount_value, returnable)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	for i := range items {
		it := &items[i]
		it.OrderID = orderID
		err := r.db.QueryRowContext(ctx, query, orderID, it.ClothID, it.PriceCents, it.Type, it.Status,
			it.DaysOfRent, it.DeliveryDate, string(it.DiscountType), it.DiscountValue, it.Returnable).Scan(&it.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) UpdateItemStatus(ctx context.Context, orderID, clothID int64, status domain.OrderItemStatus) error {
	query := `UPDATE order_items SET status=$1 WHERE order_id=$2 AND cloth_id=$3`
	res, err := r.db.ExecContext(ctx, query, status, orderID, clothID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundf("order %d has no item for garment %d", orderID, clothID)
	}
	return nil
}

func (r *orderRepository) UpdateAllItemStatuses(ctx context.Context, orderID int64, status domain.OrderItemStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE order_items SET status=$1 WHERE order_id=$2`, status, orderID)
	return err
}
