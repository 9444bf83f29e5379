package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository works
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db    *sql.DB
	repos repository.Repos
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repos: newRepos(db)}
}

func newRepos(db DBTX) repository.Repos {
	return repository.Repos{
		Orders:    NewOrderRepository(db),
		Payments:  NewPaymentRepository(db),
		Custodies: NewCustodyRepository(db),
		Rents:     NewRentRepository(db),
		Cloths:    NewClothRepository(db),
		Clients:   NewClientRepository(db),
	}
}

func (s *Store) Repos() repository.Repos {
	return s.repos
}

// WithinTx runs fn against transaction-bound repositories. Any error from fn
// rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(newRepos(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
