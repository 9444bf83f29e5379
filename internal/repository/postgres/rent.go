package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type rentRepository struct {
	db DBTX
}

func NewRentRepository(db DBTX) repository.RentRepository {
	return &rentRepository{db: db}
}

const rentColumns = `id, cloth_id, order_id, delivery_date, days_of_rent, return_date, status, created_on, updated_on`

func scanRent(row interface{ Scan(...any) error }, rt *domain.Rent) error {
	return row.Scan(&rt.ID, &rt.ClothID, &rt.OrderID, &rt.DeliveryDate, &rt.DaysOfRent,
		&rt.ReturnDate, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentRepository) Create(ctx context.Context, rt *domain.Rent) error {
	query := `INSERT INTO rents (cloth_id, order_id, delivery_date, days_of_rent, return_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rt.ClothID, rt.OrderID, rt.DeliveryDate, rt.DaysOfRent, rt.ReturnDate, rt.Status, now, now).Scan(&rt.ID)
}

func (r *rentRepository) GetByID(ctx context.Context, id int64) (*domain.Rent, error) {
	rt := &domain.Rent{}
	err := scanRent(r.db.QueryRowContext(ctx, `SELECT `+rentColumns+` FROM rents WHERE id = $1`, id), rt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("rent %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentRepository) Update(ctx context.Context, rt *domain.Rent) error {
	query := `UPDATE rents SET status=$1, return_date=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.ReturnDate, time.Now(), rt.ID)
	return err
}

func (r *rentRepository) ListNonCanceledByCloth(ctx context.Context, clothID int64, lock bool) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE cloth_id = $1 AND status <> 'CANCELED' ORDER BY delivery_date`
	if lock {
		query += ` FOR UPDATE`
	}
	return r.list(ctx, query, clothID)
}

func (r *rentRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Rent, error) {
	return r.list(ctx, `SELECT `+rentColumns+` FROM rents WHERE order_id = $1 ORDER BY id`, orderID)
}

func (r *rentRepository) CancelByOrder(ctx context.Context, orderID int64) error {
	query := `UPDATE rents SET status='CANCELED', updated_on=$1 WHERE order_id=$2 AND status <> 'CANCELED'`
	_, err := r.db.ExecContext(ctx, query, time.Now(), orderID)
	return err
}

func (r *rentRepository) MarkOverdue(ctx context.Context, before time.Time) ([]domain.Rent, error) {
	query := `UPDATE rents SET status='OVERDUE', updated_on=$1 WHERE status='ACTIVE' AND return_date < $2
	          RETURNING ` + rentColumns
	return r.list(ctx, query, time.Now(), before)
}

func (r *rentRepository) ListActiveDueOn(ctx context.Context, day time.Time) ([]domain.Rent, error) {
	return r.list(ctx, `SELECT `+rentColumns+` FROM rents WHERE status='ACTIVE' AND return_date = $1`, day)
}

func (r *rentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Rent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rents []domain.Rent
	for rows.Next() {
		var rt domain.Rent
		if err := scanRent(rows, &rt); err != nil {
			return nil, err
		}
		rents = append(rents, rt)
	}
	return rents, rows.Err()
}
