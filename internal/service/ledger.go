package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
)

type paymentService struct {
	store repository.Store
}

func NewPaymentService(store repository.Store) PaymentService {
	return &paymentService{store: store}
}

func (s *paymentService) AddPayment(ctx context.Context, orderID int64, in AddPaymentInput) (*domain.Payment, error) {
	if in.AmountCents <= 0 {
		return nil, domain.Validationf("payment amount must be positive")
	}
	ptype := in.Type
	if ptype == "" {
		ptype = domain.PaymentTypeNormal
	}
	switch ptype {
	case domain.PaymentTypeInitial, domain.PaymentTypeNormal, domain.PaymentTypeFee:
	default:
		return nil, domain.Validationf("unknown payment type %q", in.Type)
	}
	status := in.Status
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if status != domain.PaymentStatusPending && status != domain.PaymentStatusPaid {
		return nil, domain.Validationf("a new payment must be pending or paid, not %q", in.Status)
	}

	var payment *domain.Payment
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		order, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		p := &domain.Payment{
			OrderID:     order.ID,
			AmountCents: in.AmountCents,
			Status:      status,
			Type:        ptype,
			Notes:       in.Notes,
		}
		if status == domain.PaymentStatusPaid {
			now := time.Now()
			p.PaymentDate = &now
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		payment = p
		return recalculateOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) PayPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		p, err := r.Payments.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		switch p.Status {
		case domain.PaymentStatusPaid:
			return domain.InvalidStatef("payment %d is already paid", p.ID)
		case domain.PaymentStatusCanceled:
			return domain.InvalidStatef("payment %d was canceled and cannot be paid", p.ID)
		}
		now := time.Now()
		p.Status = domain.PaymentStatusPaid
		p.PaymentDate = &now
		if err := r.Payments.Update(ctx, p); err != nil {
			return err
		}
		order, err := r.Orders.GetByID(ctx, p.OrderID)
		if err != nil {
			return err
		}
		payment = p
		return recalculateOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) CancelPayment(ctx context.Context, paymentID int64, notes string) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		p, err := r.Payments.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if p.Status == domain.PaymentStatusCanceled {
			return domain.InvalidStatef("payment %d is already canceled", p.ID)
		}
		p.Status = domain.PaymentStatusCanceled
		if notes != "" {
			if p.Notes != "" {
				p.Notes += "\n"
			}
			p.Notes += notes
		}
		if err := r.Payments.Update(ctx, p); err != nil {
			return err
		}
		order, err := r.Orders.GetByID(ctx, p.OrderID)
		if err != nil {
			return err
		}
		payment = p
		return recalculateOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// recalculateOrder re-derives paid and remaining from the order's non-fee
// paid payments. The status field is only rewritten while the order is still
// pre-delivery; after delivery, payment activity is bookkeeping only.
func recalculateOrder(ctx context.Context, r repository.Repos, order *domain.Order) error {
	payments, err := r.Payments.ListByOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	nonFeePaid := domain.NonFeePaidCents(payments)
	order.PaidCents = nonFeePaid
	order.RemainingCents = order.TotalPriceCents - nonFeePaid
	if order.RemainingCents < 0 {
		order.RemainingCents = 0
	}
	if order.Status.PreDelivery() {
		switch {
		case nonFeePaid >= order.TotalPriceCents && (order.TotalPriceCents > 0 || nonFeePaid > 0):
			order.Status = domain.OrderStatusPaid
		case nonFeePaid > 0:
			order.Status = domain.OrderStatusPartiallyPaid
		default:
			order.Status = domain.OrderStatusCreated
		}
	}
	return r.Orders.Update(ctx, order)
}
