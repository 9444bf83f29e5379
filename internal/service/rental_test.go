package service

import (
	"context"
	"testing"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable(t *testing.T) {
	store, _, _, _, rents, cloths, _ := newMockStore()
	svc := NewRentalService(store, 2)

	cloths.On("GetByID", mock.Anything, int64(101)).Return(&domain.Cloth{ID: 101, Status: domain.ClothStatusReadyForRent}, nil)
	rents.On("ListNonCanceledByCloth", mock.Anything, int64(101), false).Return([]domain.Rent{
		{ID: 1, ClothID: 101, OrderID: 40, Status: domain.RentStatusActive,
			DeliveryDate: day(2026, time.June, 10), ReturnDate: day(2026, time.June, 13)},
	}, nil)

	// June 10-13 rented, padded to June 8-15: a request starting June 15
	// collides, June 16 clears the buffer.
	ok, err := svc.IsAvailable(context.Background(), 101, day(2026, time.June, 15), 3, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAvailable(context.Background(), 101, day(2026, time.June, 16), 3, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_ExcludesOwnOrder(t *testing.T) {
	store, _, _, _, rents, cloths, _ := newMockStore()
	svc := NewRentalService(store, 2)

	cloths.On("GetByID", mock.Anything, int64(101)).Return(&domain.Cloth{ID: 101}, nil)
	rents.On("ListNonCanceledByCloth", mock.Anything, int64(101), false).Return([]domain.Rent{
		{ID: 1, ClothID: 101, OrderID: 40, Status: domain.RentStatusActive,
			DeliveryDate: day(2026, time.June, 10), ReturnDate: day(2026, time.June, 13)},
	}, nil)

	ok, err := svc.IsAvailable(context.Background(), 101, day(2026, time.June, 11), 2, 40)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAvailable_Validation(t *testing.T) {
	store, _, _, _, _, _, _ := newMockStore()
	svc := NewRentalService(store, 2)

	_, err := svc.IsAvailable(context.Background(), 101, day(2026, time.June, 10), 0, 0)
	assert.True(t, domain.IsValidation(err))
}

func TestIsAvailable_UnknownGarment(t *testing.T) {
	store, _, _, _, _, cloths, _ := newMockStore()
	svc := NewRentalService(store, 2)

	cloths.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.NotFoundf("cloth 999 not found"))

	_, err := svc.IsAvailable(context.Background(), 999, day(2026, time.June, 10), 3, 0)
	assert.True(t, domain.IsNotFound(err))
}

func TestUnavailableDays(t *testing.T) {
	store, _, _, _, rents, cloths, _ := newMockStore()
	svc := NewRentalService(store, 2)

	cloths.On("GetByID", mock.Anything, int64(101)).Return(&domain.Cloth{ID: 101}, nil)
	rents.On("ListNonCanceledByCloth", mock.Anything, int64(101), false).Return([]domain.Rent{
		{ID: 1, ClothID: 101, OrderID: 40, Status: domain.RentStatusActive,
			DeliveryDate: day(2026, time.June, 10), ReturnDate: day(2026, time.June, 12)},
	}, nil)

	days, err := svc.UnavailableDays(context.Background(), 101)
	require.NoError(t, err)
	// June 10-12 padded by 2 both ways.
	require.Len(t, days, 7)
	assert.Equal(t, day(2026, time.June, 8), days[0])
	assert.Equal(t, day(2026, time.June, 14), days[6])
}
