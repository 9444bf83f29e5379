package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
)

// OrderItemInput is one garment line of an order create/update payload.
type OrderItemInput struct {
	ClothID       int64                `json:"cloth_id"`
	PriceCents    int64                `json:"price_cents"`
	Type          domain.OrderItemType `json:"type"`
	DaysOfRent    int                  `json:"days_of_rent,omitempty"`
	DeliveryDate  *time.Time           `json:"delivery_date,omitempty"`
	DiscountType  domain.DiscountType  `json:"discount_type,omitempty"`
	DiscountValue int64                `json:"discount_value,omitempty"`
	Returnable    bool                 `json:"returnable,omitempty"`
}

type CreateOrderInput struct {
	ClientID            int64               `json:"client_id"`
	InventoryID         int64               `json:"inventory_id"`
	Items               []OrderItemInput    `json:"items"`
	DiscountType        domain.DiscountType `json:"discount_type,omitempty"`
	DiscountValue       int64               `json:"discount_value,omitempty"`
	InitialPaymentCents int64               `json:"initial_payment_cents,omitempty"`
	InitialPaymentPaid  bool                `json:"initial_payment_paid,omitempty"`
	Notes               string              `json:"notes,omitempty"`
}

type AddPaymentInput struct {
	AmountCents int64                `json:"amount_cents"`
	Type        domain.PaymentType   `json:"type,omitempty"`
	Status      domain.PaymentStatus `json:"status,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

type CreateCustodyInput struct {
	Type        domain.CustodyType `json:"type"`
	Description string             `json:"description,omitempty"`
	ValueCents  int64              `json:"value_cents,omitempty"`
}

type ReturnProofInput struct {
	PhotoRef         string `json:"photo_ref,omitempty"`
	CustomerName     string `json:"customer_name"`
	CustomerIDNumber string `json:"customer_id_number,omitempty"`
}

// OrderSnapshot is the produced order view: the order with every record that
// hangs off it.
type OrderSnapshot struct {
	Order     domain.Order       `json:"order"`
	Items     []domain.OrderItem `json:"items"`
	Payments  []domain.Payment   `json:"payments"`
	Custodies []domain.Custody   `json:"custodies"`
	Rents     []domain.Rent      `json:"rents,omitempty"`
}

// OrderService is the order lifecycle state machine. Every transition runs in
// one transaction; a failed precondition leaves no partial writes.
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderSnapshot, error)
	GetOrder(ctx context.Context, orderID int64) (*OrderSnapshot, error)
	UpdateItems(ctx context.Context, orderID int64, items []OrderItemInput) (*OrderSnapshot, error)
	Deliver(ctx context.Context, orderID int64) (*domain.Order, error)
	ReturnItem(ctx context.Context, orderID, clothID int64, clothStatus domain.ClothStatus) error
	Finish(ctx context.Context, orderID int64) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int64) (*domain.Order, error)
}

// PaymentService tracks payments against an order and keeps the order's
// paid/remaining/status derivation current.
type PaymentService interface {
	AddPayment(ctx context.Context, orderID int64, in AddPaymentInput) (*domain.Payment, error)
	PayPayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
	CancelPayment(ctx context.Context, paymentID int64, notes string) (*domain.Payment, error)
}

// CustodyService tracks deposits held against an order.
type CustodyService interface {
	CreateCustody(ctx context.Context, orderID int64, in CreateCustodyInput) (*domain.Custody, error)
	Decide(ctx context.Context, custodyID int64, outcome domain.CustodyStatus) (*domain.Custody, error)
	AttachReturnProof(ctx context.Context, custodyID int64, in ReturnProofInput) (*domain.CustodyReturn, error)
}

// RentalService answers booking-calendar queries for a garment.
type RentalService interface {
	IsAvailable(ctx context.Context, clothID int64, deliveryDate time.Time, daysOfRent int, excludeOrderID int64) (bool, error)
	UnavailableDays(ctx context.Context, clothID int64) ([]time.Time, error)
}

// EmailService delivers fire-and-forget customer mail. Failures are logged by
// callers, never surfaced to lifecycle transitions.
type EmailService interface {
	SendOrderReceipt(ctx context.Context, to, clientName, orderNumber string, totalCents int64) error
	SendReturnReminder(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error
	SendOverdueNotice(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error
}
