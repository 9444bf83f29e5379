package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type clientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, phone, email, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, time.Now()).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, phone, email, created_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("client %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
