package domain

import "time"

type ClothStatus string

const (
	ClothStatusReadyForRent ClothStatus = "READY_FOR_RENT"
	ClothStatusRented       ClothStatus = "RENTED"
	ClothStatusSold         ClothStatus = "SOLD"
	ClothStatusDamaged      ClothStatus = "DAMAGED"
	ClothStatusRepairing    ClothStatus = "REPAIRING"
	ClothStatusBurned       ClothStatus = "BURNED"
	ClothStatusScratched    ClothStatus = "SCRATCHED"
	ClothStatusRetired      ClothStatus = "RETIRED"
)

// Terminal reports whether the garment has permanently left circulation.
// Sold garments are terminal too, but a canceled sale reverses them; the
// write-off statuses never come back.
func (s ClothStatus) Terminal() bool {
	switch s {
	case ClothStatusBurned, ClothStatusScratched, ClothStatusRetired:
		return true
	}
	return false
}

// Rentable reports whether a new order item may reference the garment.
func (s ClothStatus) Rentable() bool {
	switch s {
	case ClothStatusReadyForRent, ClothStatusRented:
		return true
	}
	return false
}

// ValidReturnStatus reports whether a caller-supplied status is acceptable as
// the garment's state after an item return.
func (s ClothStatus) ValidReturnStatus() bool {
	switch s {
	case ClothStatusReadyForRent, ClothStatusDamaged, ClothStatusRepairing,
		ClothStatusBurned, ClothStatusScratched, ClothStatusRetired:
		return true
	}
	return false
}

type Cloth struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Status    ClothStatus `json:"status"`
	CreatedOn time.Time   `json:"created_on"`
	UpdatedOn time.Time   `json:"updated_on"`
}
