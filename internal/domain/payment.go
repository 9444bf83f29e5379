package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

type PaymentType string

const (
	PaymentTypeInitial PaymentType = "INITIAL"
	PaymentTypeNormal  PaymentType = "NORMAL"
	PaymentTypeFee     PaymentType = "FEE"
)

// Payment rows are never deleted; cancellation keeps the row for audit.
type Payment struct {
	ID          int64         `json:"id"`
	OrderID     int64         `json:"order_id"`
	AmountCents int64         `json:"amount_cents"`
	Status      PaymentStatus `json:"status"`
	Type        PaymentType   `json:"type"`
	PaymentDate *time.Time    `json:"payment_date,omitempty"`
	Notes       string        `json:"notes"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}

// CountsTowardRemaining reports whether the payment participates in the
// paid/remaining derivation. Fee payments are audit-only.
func (p Payment) CountsTowardRemaining() bool {
	return p.Status == PaymentStatusPaid && p.Type != PaymentTypeFee
}

// NonFeePaidCents sums the payments that count against the order total.
func NonFeePaidCents(payments []Payment) int64 {
	var sum int64
	for _, p := range payments {
		if p.CountsTowardRemaining() {
			sum += p.AmountCents
		}
	}
	return sum
}

// HasPendingPayment reports whether any payment, fees included, is pending.
func HasPendingPayment(payments []Payment) bool {
	for _, p := range payments {
		if p.Status == PaymentStatusPending {
			return true
		}
	}
	return false
}
