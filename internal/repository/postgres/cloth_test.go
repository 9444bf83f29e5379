package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clothRow(c domain.Cloth) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "code", "name", "status", "created_on", "updated_on"}).
		AddRow(c.ID, c.Code, c.Name, c.Status, now, now)
}

func TestClothRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewClothRepository(db)
	mock.ExpectQuery(`SELECT (.+) FROM cloths WHERE id = \$1$`).WithArgs(int64(101)).
		WillReturnRows(clothRow(domain.Cloth{ID: 101, Code: "DRESS-101", Status: domain.ClothStatusReadyForRent}))

	cloth, err := repo.GetByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, domain.ClothStatusReadyForRent, cloth.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClothRepository_GetByIDForUpdate_Locks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewClothRepository(db)
	mock.ExpectQuery(`SELECT (.+) FROM cloths WHERE id = \$1 FOR UPDATE$`).WithArgs(int64(101)).
		WillReturnRows(clothRow(domain.Cloth{ID: 101, Code: "DRESS-101", Status: domain.ClothStatusReadyForRent}))

	_, err = repo.GetByIDForUpdate(context.Background(), 101)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClothRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewClothRepository(db)
	mock.ExpectExec(`UPDATE cloths SET status`).
		WithArgs(domain.ClothStatusRented, sqlmock.AnyArg(), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), 999, domain.ClothStatusRented)
	assert.True(t, domain.IsNotFound(err))
}
