package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/booking"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type rentalService struct {
	store      repository.Store
	bufferDays int
}

func NewRentalService(store repository.Store, bufferDays int) RentalService {
	if bufferDays <= 0 {
		bufferDays = booking.DefaultBufferDays
	}
	return &rentalService{store: store, bufferDays: bufferDays}
}

func (s *rentalService) IsAvailable(ctx context.Context, clothID int64, deliveryDate time.Time, daysOfRent int, excludeOrderID int64) (bool, error) {
	if daysOfRent < 1 {
		return false, domain.Validationf("days of rent must be at least 1")
	}
	r := s.store.Repos()
	if _, err := r.Cloths.GetByID(ctx, clothID); err != nil {
		return false, err
	}
	rents, err := r.Rents.ListNonCanceledByCloth(ctx, clothID, false)
	if err != nil {
		return false, err
	}
	return !booking.Conflicts(deliveryDate, daysOfRent, rents, s.bufferDays, excludeOrderID), nil
}

func (s *rentalService) UnavailableDays(ctx context.Context, clothID int64) ([]time.Time, error) {
	r := s.store.Repos()
	if _, err := r.Cloths.GetByID(ctx, clothID); err != nil {
		return nil, err
	}
	rents, err := r.Rents.ListNonCanceledByCloth(ctx, clothID, false)
	if err != nil {
		return nil, err
	}
	return booking.UnavailableDays(rents, s.bufferDays), nil
}

// bookRent creates the active rent for a delivered rent-type item. It locks
// the garment row, then re-checks availability with the garment's rent rows
// locked, so a stale check between validation and commit surfaces as a
// conflict instead of a double booking. The garment-row lock is what
// serializes two first-time deliveries: with no rent rows yet, the rent scan
// alone locks nothing.
func bookRent(ctx context.Context, r repository.Repos, orderID int64, it domain.OrderItem, bufferDays int) (*domain.Rent, error) {
	if it.DeliveryDate == nil {
		return nil, domain.Validationf("rent item for garment %d has no delivery date", it.ClothID)
	}
	if _, err := r.Cloths.GetByIDForUpdate(ctx, it.ClothID); err != nil {
		return nil, err
	}
	rents, err := r.Rents.ListNonCanceledByCloth(ctx, it.ClothID, true)
	if err != nil {
		return nil, err
	}
	if booking.Conflicts(*it.DeliveryDate, it.DaysOfRent, rents, bufferDays, orderID) {
		return nil, domain.Conflictf("garment %d is already booked around %s",
			it.ClothID, it.DeliveryDate.Format("2006-01-02"))
	}
	rent := &domain.Rent{
		ClothID:      it.ClothID,
		OrderID:      orderID,
		DeliveryDate: booking.Day(*it.DeliveryDate),
		DaysOfRent:   it.DaysOfRent,
		ReturnDate:   booking.ReturnDate(*it.DeliveryDate, it.DaysOfRent),
		Status:       domain.RentStatusActive,
	}
	if err := r.Rents.Create(ctx, rent); err != nil {
		return nil, err
	}
	return rent, nil
}
