package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)
	payment := &domain.Payment{
		OrderID:     7,
		AmountCents: 5000,
		Status:      domain.PaymentStatusPending,
		Type:        domain.PaymentTypeInitial,
	}

	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(payment.OrderID, payment.AmountCents, payment.Status, payment.Type,
			payment.PaymentDate, payment.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	require.NoError(t, repo.Create(context.Background(), payment))
	assert.Equal(t, int64(10), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_ListByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "order_id", "amount_cents", "status", "type", "payment_date", "notes", "created_on", "updated_on",
	}).
		AddRow(10, 7, 5000, "PAID", "INITIAL", now, "", now, now).
		AddRow(11, 7, 2500, "PENDING", "FEE", nil, "late fee", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE order_id`).WithArgs(int64(7)).WillReturnRows(rows)

	payments, err := repo.ListByOrder(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].CountsTowardRemaining())
	assert.False(t, payments[1].CountsTowardRemaining())
	assert.Nil(t, payments[1].PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentRepository(db)
	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE id`).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id`).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = store.WithinTx(context.Background(), func(r repository.Repos) error {
		_, err := r.Orders.GetByID(context.Background(), 99)
		return err
	})
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
