package domain

import "time"

type RentStatus string

const (
	RentStatusActive    RentStatus = "ACTIVE"
	RentStatusOverdue   RentStatus = "OVERDUE"
	RentStatusCompleted RentStatus = "COMPLETED"
	RentStatusCanceled  RentStatus = "CANCELED"
)

// Rent is a garment booking created at delivery time. Canceled rents are
// permanently excluded from conflict detection; overdue rents still count as
// checked out.
type Rent struct {
	ID           int64      `json:"id"`
	ClothID      int64      `json:"cloth_id"`
	OrderID      int64      `json:"order_id"`
	DeliveryDate time.Time  `json:"delivery_date"`
	DaysOfRent   int        `json:"days_of_rent"`
	ReturnDate   time.Time  `json:"return_date"`
	Status       RentStatus `json:"status"`
	CreatedOn    time.Time  `json:"created_on"`
	UpdatedOn    time.Time  `json:"updated_on"`
}

// CheckedOut reports whether the garment is still out under this rent.
func (r Rent) CheckedOut() bool {
	return r.Status == RentStatusActive || r.Status == RentStatusOverdue
}
