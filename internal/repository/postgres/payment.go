package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (order_id, amount_cents, status, type, payment_date, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.OrderID, p.AmountCents, p.Status, p.Type, p.PaymentDate, p.Notes, now, now).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, order_id, amount_cents, status, type, payment_date, notes, created_on, updated_on
	          FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OrderID, &p.AmountCents, &p.Status, &p.Type, &p.PaymentDate, &p.Notes, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("payment %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update never deletes a payment row; cancellations keep the row for audit.
func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET status=$1, payment_date=$2, notes=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, p.Status, p.PaymentDate, p.Notes, time.Now(), p.ID)
	return err
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	query := `SELECT id, order_id, amount_cents, status, type, payment_date, notes, created_on, updated_on
	          FROM payments WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Status, &p.Type, &p.PaymentDate, &p.Notes, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
