package service

import (
	"context"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

// Garment status is written only through the helpers below, so every
// lifecycle transition has exactly one place deciding the resulting status.
// All of them run inside the owning transition's transaction.

func clothRentDelivered(ctx context.Context, r repository.Repos, clothID int64) error {
	return setClothStatus(ctx, r, clothID, domain.ClothStatusRented)
}

func clothBuyDelivered(ctx context.Context, r repository.Repos, clothID int64) error {
	return setClothStatus(ctx, r, clothID, domain.ClothStatusSold)
}

// clothReturned applies the caller-chosen status when a rented garment comes
// back: ready again, or one of the damage/write-off states.
func clothReturned(ctx context.Context, r repository.Repos, clothID int64, status domain.ClothStatus) error {
	if !status.ValidReturnStatus() {
		return domain.Validationf("%q is not a valid garment status after return", status)
	}
	return setClothStatus(ctx, r, clothID, status)
}

// clothReleased frees a garment on item detach or order cancellation. A
// voided sale puts the garment back in circulation; physical write-offs
// (burned, scratched, retired) survive cancellation.
func clothReleased(ctx context.Context, r repository.Repos, clothID int64) error {
	c, err := r.Cloths.GetByID(ctx, clothID)
	if err != nil {
		return err
	}
	if c.Status.Terminal() || c.Status == domain.ClothStatusReadyForRent {
		return nil
	}
	return r.Cloths.UpdateStatus(ctx, clothID, domain.ClothStatusReadyForRent)
}

func setClothStatus(ctx context.Context, r repository.Repos, clothID int64, status domain.ClothStatus) error {
	c, err := r.Cloths.GetByID(ctx, clothID)
	if err != nil {
		return err
	}
	if c.Status.Terminal() {
		return domain.InvalidStatef("garment %d is written off as %s", clothID, c.Status)
	}
	if c.Status == domain.ClothStatusSold && status != domain.ClothStatusSold {
		return domain.InvalidStatef("garment %d was sold and cannot change status", clothID)
	}
	if c.Status == status {
		return nil
	}
	return r.Cloths.UpdateStatus(ctx, clothID, status)
}
