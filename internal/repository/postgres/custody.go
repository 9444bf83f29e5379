package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type custodyRepository struct {
	db DBTX
}

func NewCustodyRepository(db DBTX) repository.CustodyRepository {
	return &custodyRepository{db: db}
}

func (r *custodyRepository) Create(ctx context.Context, c *domain.Custody) error {
	query := `INSERT INTO custodies (order_id, type, description, value_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.OrderID, c.Type, c.Description, c.ValueCents, c.Status, now, now).Scan(&c.ID)
}

func (r *custodyRepository) GetByID(ctx context.Context, id int64) (*domain.Custody, error) {
	c := &domain.Custody{}
	query := `SELECT id, order_id, type, description, value_cents, status, created_on, updated_on
	          FROM custodies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.OrderID, &c.Type, &c.Description, &c.ValueCents, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("custody %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *custodyRepository) Update(ctx context.Context, c *domain.Custody) error {
	query := `UPDATE custodies SET status=$1, description=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, c.Status, c.Description, time.Now(), c.ID)
	return err
}

func (r *custodyRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Custody, error) {
	query := `SELECT id, order_id, type, description, value_cents, status, created_on, updated_on
	          FROM custodies WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var custodies []domain.Custody
	for rows.Next() {
		var c domain.Custody
		if err := rows.Scan(&c.ID, &c.OrderID, &c.Type, &c.Description, &c.ValueCents, &c.Status, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		custodies = append(custodies, c)
	}
	return custodies, rows.Err()
}

func (r *custodyRepository) CreateReturn(ctx context.Context, ret *domain.CustodyReturn) error {
	query := `INSERT INTO custody_returns (custody_id, returned_at, photo_ref, customer_name, customer_id_number)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		ret.CustodyID, ret.ReturnedAt, ret.PhotoRef, ret.CustomerName, ret.CustomerIDNumber).Scan(&ret.ID)
}

func (r *custodyRepository) ListReturns(ctx context.Context, custodyID int64) ([]domain.CustodyReturn, error) {
	query := `SELECT id, custody_id, returned_at, photo_ref, customer_name, customer_id_number
	          FROM custody_returns WHERE custody_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, custodyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var returns []domain.CustodyReturn
	for rows.Next() {
		var ret domain.CustodyReturn
		if err := rows.Scan(&ret.ID, &ret.CustodyID, &ret.ReturnedAt, &ret.PhotoRef, &ret.CustomerName, &ret.CustomerIDNumber); err != nil {
			return nil, err
		}
		returns = append(returns, ret)
	}
	return returns, rows.Err()
}
