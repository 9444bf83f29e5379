package domain

import "time"

type OrderStatus string

const (
	OrderStatusCreated       OrderStatus = "CREATED"
	OrderStatusPartiallyPaid OrderStatus = "PARTIALLY_PAID"
	OrderStatusPaid          OrderStatus = "PAID"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusFinished      OrderStatus = "FINISHED"
	OrderStatusCanceled      OrderStatus = "CANCELED"
)

// PreDelivery reports whether the order is still in a payment-derived state.
// Only these states may have their status rewritten by payment recalculation.
func (s OrderStatus) PreDelivery() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPartiallyPaid, OrderStatusPaid:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

type Order struct {
	ID              int64        `json:"id"`
	Number          string       `json:"number"`
	ClientID        int64        `json:"client_id"`
	InventoryID     int64        `json:"inventory_id"`
	TotalPriceCents int64        `json:"total_price_cents"`
	PaidCents       int64        `json:"paid_cents"`
	RemainingCents  int64        `json:"remaining_cents"`
	Status          OrderStatus  `json:"status"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountValue   int64        `json:"discount_value"`
	Notes           string       `json:"notes"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}

type OrderItemType string

const (
	OrderItemTypeBuy       OrderItemType = "BUY"
	OrderItemTypeRent      OrderItemType = "RENT"
	OrderItemTypeTailoring OrderItemType = "TAILORING"
)

type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "PENDING"
	OrderItemStatusDelivered OrderItemStatus = "DELIVERED"
	OrderItemStatusReturned  OrderItemStatus = "RETURNED"
	OrderItemStatusCanceled  OrderItemStatus = "CANCELED"
)

// OrderItem associates a garment with an order. An order holds at most one
// item per garment.
type OrderItem struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	ClothID       int64           `json:"cloth_id"`
	PriceCents    int64           `json:"price_cents"`
	Type          OrderItemType   `json:"type"`
	Status        OrderItemStatus `json:"status"`
	DaysOfRent    int             `json:"days_of_rent,omitempty"`
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue int64           `json:"discount_value"`
	Returnable    bool            `json:"returnable"`
}

// NetPriceCents is the item price after its own discount.
func (it OrderItem) NetPriceCents() int64 {
	return ApplyDiscount(it.PriceCents, it.DiscountType, it.DiscountValue)
}

// ApplyDiscount applies a percentage or fixed discount to an amount of cents.
// Percentage values are whole percents; results round half-up to the cent and
// never go below zero.
func ApplyDiscount(amountCents int64, dt DiscountType, value int64) int64 {
	var out int64
	switch dt {
	case DiscountPercentage:
		if value <= 0 {
			return amountCents
		}
		if value >= 100 {
			return 0
		}
		out = (amountCents*(100-value) + 50) / 100
	case DiscountFixed:
		out = amountCents - value
	default:
		return amountCents
	}
	if out < 0 {
		out = 0
	}
	return out
}
