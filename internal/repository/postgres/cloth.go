package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type clothRepository struct {
	db DBTX
}

func NewClothRepository(db DBTX) repository.ClothRepository {
	return &clothRepository{db: db}
}

func (r *clothRepository) Create(ctx context.Context, c *domain.Cloth) error {
	query := `INSERT INTO cloths (code, name, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Status, now, now).Scan(&c.ID)
}

func (r *clothRepository) GetByID(ctx context.Context, id int64) (*domain.Cloth, error) {
	return r.get(ctx, id, false)
}

func (r *clothRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cloth, error) {
	return r.get(ctx, id, true)
}

func (r *clothRepository) get(ctx context.Context, id int64, lock bool) (*domain.Cloth, error) {
	c := &domain.Cloth{}
	query := `SELECT id, code, name, status, created_on, updated_on FROM cloths WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("garment %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clothRepository) UpdateStatus(ctx context.Context, id int64, status domain.ClothStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cloths SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundf("garment %d not found", id)
	}
	return nil
}
