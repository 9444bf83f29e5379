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

func rentRows(rents ...domain.Rent) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "cloth_id", "order_id", "delivery_date", "days_of_rent",
		"return_date", "status", "created_on", "updated_on",
	})
	for _, r := range rents {
		rows.AddRow(r.ID, r.ClothID, r.OrderID, r.DeliveryDate, r.DaysOfRent,
			r.ReturnDate, r.Status, r.CreatedOn, r.UpdatedOn)
	}
	return rows
}

func TestRentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentRepository(db)
	rent := &domain.Rent{
		ClothID:      101,
		OrderID:      7,
		DeliveryDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		DaysOfRent:   3,
		ReturnDate:   time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC),
		Status:       domain.RentStatusActive,
	}

	mock.ExpectQuery(`INSERT INTO rents`).
		WithArgs(rent.ClothID, rent.OrderID, rent.DeliveryDate, rent.DaysOfRent,
			rent.ReturnDate, rent.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	require.NoError(t, repo.Create(context.Background(), rent))
	assert.Equal(t, int64(9), rent.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentRepository_ListNonCanceledByCloth_Lock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentRepository(db)
	mock.ExpectQuery(`SELECT (.+) FROM rents WHERE cloth_id (.+) FOR UPDATE`).
		WithArgs(int64(101)).
		WillReturnRows(rentRows(domain.Rent{ID: 9, ClothID: 101, OrderID: 7, Status: domain.RentStatusActive}))

	rents, err := repo.ListNonCanceledByCloth(context.Background(), 101, true)
	require.NoError(t, err)
	require.Len(t, rents, 1)
	assert.Equal(t, domain.RentStatusActive, rents[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentRepository_CancelByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentRepository(db)
	mock.ExpectExec(`UPDATE rents SET status='CANCELED'`).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.CancelByOrder(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentRepository(db)
	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE rents SET status='OVERDUE'`).
		WithArgs(sqlmock.AnyArg(), today).
		WillReturnRows(rentRows(domain.Rent{
			ID: 9, ClothID: 101, OrderID: 7, Status: domain.RentStatusOverdue,
			ReturnDate: time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC),
		}))

	overdue, err := repo.MarkOverdue(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(101), overdue[0].ClothID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
