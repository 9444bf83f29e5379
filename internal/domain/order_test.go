package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	// Half-up rounding: 10% off 10005 leaves 9004.5, which rounds to 9005.
	assert.Equal(t, int64(9005), ApplyDiscount(10005, DiscountPercentage, 10))
	assert.Equal(t, int64(9000), ApplyDiscount(10000, DiscountPercentage, 10))
	assert.Equal(t, int64(10000), ApplyDiscount(10000, DiscountNone, 50))
	assert.Equal(t, int64(10000), ApplyDiscount(10000, DiscountPercentage, 0))
	assert.Equal(t, int64(0), ApplyDiscount(10000, DiscountPercentage, 100))
	assert.Equal(t, int64(9500), ApplyDiscount(10000, DiscountFixed, 500))
	// A fixed discount never pushes the amount below zero.
	assert.Equal(t, int64(0), ApplyDiscount(300, DiscountFixed, 500))
}

func TestNonFeePaidCents(t *testing.T) {
	payments := []Payment{
		{AmountCents: 5000, Status: PaymentStatusPaid, Type: PaymentTypeInitial},
		{AmountCents: 3000, Status: PaymentStatusPaid, Type: PaymentTypeNormal},
		{AmountCents: 2500, Status: PaymentStatusPaid, Type: PaymentTypeFee},
		{AmountCents: 1000, Status: PaymentStatusPending, Type: PaymentTypeNormal},
		{AmountCents: 4000, Status: PaymentStatusCanceled, Type: PaymentTypeNormal},
	}
	assert.Equal(t, int64(8000), NonFeePaidCents(payments))
	assert.True(t, HasPendingPayment(payments))
	assert.False(t, HasPendingPayment(payments[:3]))
}

func TestOrderStatusPreDelivery(t *testing.T) {
	assert.True(t, OrderStatusCreated.PreDelivery())
	assert.True(t, OrderStatusPartiallyPaid.PreDelivery())
	assert.True(t, OrderStatusPaid.PreDelivery())
	assert.False(t, OrderStatusDelivered.PreDelivery())
	assert.False(t, OrderStatusFinished.PreDelivery())
	assert.False(t, OrderStatusCanceled.PreDelivery())
}

func TestClothStatusPredicates(t *testing.T) {
	for _, s := range []ClothStatus{ClothStatusBurned, ClothStatusScratched, ClothStatusRetired} {
		assert.True(t, s.Terminal(), "%s", s)
		assert.True(t, s.ValidReturnStatus(), "%s", s)
	}
	assert.False(t, ClothStatusSold.Terminal())
	assert.False(t, ClothStatusSold.ValidReturnStatus())
	assert.False(t, ClothStatusRented.ValidReturnStatus())
	assert.True(t, ClothStatusDamaged.ValidReturnStatus())
	assert.True(t, ClothStatusRepairing.ValidReturnStatus())
}

func TestRentCheckedOut(t *testing.T) {
	assert.True(t, Rent{Status: RentStatusActive}.CheckedOut())
	assert.True(t, Rent{Status: RentStatusOverdue}.CheckedOut())
	assert.False(t, Rent{Status: RentStatusCompleted}.CheckedOut())
	assert.False(t, Rent{Status: RentStatusCanceled}.CheckedOut())
}
