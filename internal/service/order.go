package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/booking"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/logger"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	store      repository.Store
	emailSvc   EmailService
	bufferDays int
}

func NewOrderService(store repository.Store, emailSvc EmailService, bufferDays int) OrderService {
	if bufferDays <= 0 {
		bufferDays = booking.DefaultBufferDays
	}
	return &orderService{store: store, emailSvc: emailSvc, bufferDays: bufferDays}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderSnapshot, error) {
	if err := validateDiscount(in.DiscountType, in.DiscountValue); err != nil {
		return nil, err
	}
	if in.InitialPaymentCents < 0 {
		return nil, domain.Validationf("initial payment cannot be negative")
	}

	var snap *OrderSnapshot
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		if _, err := r.Clients.GetByID(ctx, in.ClientID); err != nil {
			return err
		}
		items, err := buildItems(ctx, r, in.Items)
		if err != nil {
			return err
		}
		if err := checkRentAvailability(ctx, r, items, s.bufferDays, 0); err != nil {
			return err
		}

		order := &domain.Order{
			Number:        uuid.NewString(),
			ClientID:      in.ClientID,
			InventoryID:   in.InventoryID,
			Status:        domain.OrderStatusCreated,
			DiscountType:  in.DiscountType,
			DiscountValue: in.DiscountValue,
			Notes:         in.Notes,
		}
		order.TotalPriceCents = orderTotalCents(items, order.DiscountType, order.DiscountValue)
		order.RemainingCents = order.TotalPriceCents
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}
		if err := r.Orders.ReplaceItems(ctx, order.ID, items); err != nil {
			return err
		}

		if in.InitialPaymentCents > 0 {
			p := &domain.Payment{
				OrderID:     order.ID,
				AmountCents: in.InitialPaymentCents,
				Type:        domain.PaymentTypeInitial,
				Status:      domain.PaymentStatusPending,
			}
			if in.InitialPaymentPaid {
				now := time.Now()
				p.Status = domain.PaymentStatusPaid
				p.PaymentDate = &now
			}
			if err := r.Payments.Create(ctx, p); err != nil {
				return err
			}
		}
		if err := recalculateOrder(ctx, r, order); err != nil {
			return err
		}
		snap, err = assembleSnapshot(ctx, r, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID int64) (*OrderSnapshot, error) {
	r := s.store.Repos()
	order, err := r.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return assembleSnapshot(ctx, r, order)
}

// UpdateItems replaces the order's item set. Garments dropped from the set
// are released; the whole update is rejected if any rent item's window
// conflicts with another order's booking.
func (s *orderService) UpdateItems(ctx context.Context, orderID int64, inputs []OrderItemInput) (*OrderSnapshot, error) {
	var snap *OrderSnapshot
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		order, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.PreDelivery() {
			return domain.InvalidStatef("items can only change before delivery; order %d is %s", order.ID, order.Status)
		}
		items, err := buildItems(ctx, r, inputs)
		if err != nil {
			return err
		}
		if err := checkRentAvailability(ctx, r, items, s.bufferDays, order.ID); err != nil {
			return err
		}

		existing, err := r.Orders.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		kept := make(map[int64]bool, len(items))
		for _, it := range items {
			kept[it.ClothID] = true
		}
		for _, it := range existing {
			if !kept[it.ClothID] {
				if err := clothReleased(ctx, r, it.ClothID); err != nil {
					return err
				}
			}
		}

		if err := r.Orders.ReplaceItems(ctx, order.ID, items); err != nil {
			return err
		}
		order.TotalPriceCents = orderTotalCents(items, order.DiscountType, order.DiscountValue)
		if err := recalculateOrder(ctx, r, order); err != nil {
			return err
		}
		snap, err = assembleSnapshot(ctx, r, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Deliver hands the order's garments to the client. Requires an undecided
// custody deposit; books a rent for every rent item and syncs garment
// statuses, all in one transaction.
func (s *orderService) Deliver(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		o, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.Status.PreDelivery() {
			return domain.InvalidStatef("order %d cannot be delivered from %s", o.ID, o.Status)
		}
		custodies, err := r.Custodies.ListByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		if err := custodiesAllowDelivery(custodies); err != nil {
			return err
		}
		items, err := r.Orders.ListItems(ctx, o.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.Preconditionf("order %d has no items to deliver", o.ID)
		}

		for _, it := range items {
			switch it.Type {
			case domain.OrderItemTypeRent:
				if _, err := bookRent(ctx, r, o.ID, it, s.bufferDays); err != nil {
					return err
				}
				if err := clothRentDelivered(ctx, r, it.ClothID); err != nil {
					return err
				}
			case domain.OrderItemTypeBuy:
				if err := clothBuyDelivered(ctx, r, it.ClothID); err != nil {
					return err
				}
			}
		}
		if err := r.Orders.UpdateAllItemStatuses(ctx, o.ID, domain.OrderItemStatusDelivered); err != nil {
			return err
		}
		o.Status = domain.OrderStatusDelivered
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ReturnItem takes a rented garment back and records its resulting status.
func (s *orderService) ReturnItem(ctx context.Context, orderID, clothID int64, clothStatus domain.ClothStatus) error {
	return s.store.WithinTx(ctx, func(r repository.Repos) error {
		order, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderStatusDelivered {
			return domain.InvalidStatef("items come back against a delivered order; order %d is %s", order.ID, order.Status)
		}
		items, err := r.Orders.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		var item *domain.OrderItem
		for i := range items {
			if items[i].ClothID == clothID {
				item = &items[i]
				break
			}
		}
		if item == nil {
			return domain.Validationf("garment %d is not part of order %d", clothID, order.ID)
		}
		if item.Type != domain.OrderItemTypeRent {
			return domain.Validationf("garment %d was not rented on order %d", clothID, order.ID)
		}
		if item.Status != domain.OrderItemStatusDelivered {
			return domain.InvalidStatef("garment %d is not out on order %d", clothID, order.ID)
		}

		rents, err := r.Rents.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		var rent *domain.Rent
		for i := range rents {
			if rents[i].ClothID == clothID && rents[i].CheckedOut() {
				rent = &rents[i]
				break
			}
		}
		if rent == nil {
			return domain.NotFoundf("no active rent for garment %d on order %d", clothID, order.ID)
		}
		rent.Status = domain.RentStatusCompleted
		if err := r.Rents.Update(ctx, rent); err != nil {
			return err
		}
		if err := clothReturned(ctx, r, clothID, clothStatus); err != nil {
			return err
		}
		return r.Orders.UpdateItemStatus(ctx, order.ID, clothID, domain.OrderItemStatusReturned)
	})
}

// Finish closes the order. Everything must be settled: custodies decided and
// proven, no pending payment of any type, non-fee paid covering the total,
// and every rented garment back.
func (s *orderService) Finish(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	var client *domain.Client
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		o, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != domain.OrderStatusDelivered {
			return domain.InvalidStatef("order %d cannot finish from %s", o.ID, o.Status)
		}

		custodies, err := r.Custodies.ListByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		proofCounts := make(map[int64]int)
		for _, c := range custodies {
			if c.Status != domain.CustodyStatusReturned {
				continue
			}
			proofs, err := r.Custodies.ListReturns(ctx, c.ID)
			if err != nil {
				return err
			}
			proofCounts[c.ID] = len(proofs)
		}
		if err := custodiesAllowFinish(custodies, proofCounts); err != nil {
			return err
		}

		payments, err := r.Payments.ListByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		for _, p := range payments {
			if p.Status == domain.PaymentStatusPending {
				return domain.Preconditionf("payment %d is still pending", p.ID)
			}
		}
		if paid := domain.NonFeePaidCents(payments); paid < o.TotalPriceCents {
			return domain.Preconditionf("order %d is not fully paid: %d of %d cents", o.ID, paid, o.TotalPriceCents)
		}

		rents, err := r.Rents.ListByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		for _, rt := range rents {
			if rt.CheckedOut() {
				return domain.Preconditionf("garment %d has not been returned", rt.ClothID)
			}
		}

		o.Status = domain.OrderStatusFinished
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		client, _ = r.Clients.GetByID(ctx, o.ClientID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if client != nil && client.Email != "" {
		if err := s.emailSvc.SendOrderReceipt(ctx, client.Email, client.Name, order.Number, order.TotalPriceCents); err != nil {
			logger.Warn("Failed to send order receipt", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

// Cancel voids the order from any pre-delivery state or from delivered:
// items drop to canceled, garments go back in circulation, rents stop
// counting in conflict checks.
func (s *orderService) Cancel(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		o, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		switch o.Status {
		case domain.OrderStatusFinished:
			return domain.InvalidStatef("finished order %d cannot be canceled", o.ID)
		case domain.OrderStatusCanceled:
			return domain.InvalidStatef("order %d is already canceled", o.ID)
		}

		items, err := r.Orders.ListItems(ctx, o.ID)
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := clothReleased(ctx, r, it.ClothID); err != nil {
				return err
			}
		}
		if err := r.Orders.UpdateAllItemStatuses(ctx, o.ID, domain.OrderItemStatusCanceled); err != nil {
			return err
		}
		if err := r.Rents.CancelByOrder(ctx, o.ID); err != nil {
			return err
		}
		o.Status = domain.OrderStatusCanceled
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// buildItems validates the incoming item set and converts it to owned
// OrderItem values. An order holds at most one item per garment.
func buildItems(ctx context.Context, r repository.Repos, inputs []OrderItemInput) ([]domain.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, domain.Validationf("order needs at least one item")
	}
	seen := make(map[int64]bool, len(inputs))
	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		if seen[in.ClothID] {
			return nil, domain.Validationf("garment %d appears twice in the item set", in.ClothID)
		}
		seen[in.ClothID] = true
		if in.PriceCents < 0 {
			return nil, domain.Validationf("item price cannot be negative")
		}
		if err := validateDiscount(in.DiscountType, in.DiscountValue); err != nil {
			return nil, err
		}

		switch in.Type {
		case domain.OrderItemTypeRent:
			if in.DaysOfRent < 1 {
				return nil, domain.Validationf("rent item for garment %d needs days of rent", in.ClothID)
			}
			if in.DeliveryDate == nil {
				return nil, domain.Validationf("rent item for garment %d needs a delivery date", in.ClothID)
			}
		case domain.OrderItemTypeBuy, domain.OrderItemTypeTailoring:
		default:
			return nil, domain.Validationf("unknown item type %q", in.Type)
		}

		cloth, err := r.Cloths.GetByID(ctx, in.ClothID)
		if err != nil {
			return nil, err
		}
		if cloth.Status == domain.ClothStatusSold {
			return nil, domain.Validationf("garment %d was sold and cannot be ordered", in.ClothID)
		}
		if cloth.Status.Terminal() {
			return nil, domain.Validationf("garment %d is written off as %s", in.ClothID, cloth.Status)
		}

		item := domain.OrderItem{
			ClothID:       in.ClothID,
			PriceCents:    in.PriceCents,
			Type:          in.Type,
			Status:        domain.OrderItemStatusPending,
			DiscountType:  in.DiscountType,
			DiscountValue: in.DiscountValue,
			Returnable:    in.Returnable,
		}
		if in.Type == domain.OrderItemTypeRent {
			d := booking.Day(*in.DeliveryDate)
			item.DeliveryDate = &d
			item.DaysOfRent = in.DaysOfRent
		}
		items = append(items, item)
	}
	return items, nil
}

// checkRentAvailability rejects the whole item set if any rent item's window
// collides with another order's booking.
func checkRentAvailability(ctx context.Context, r repository.Repos, items []domain.OrderItem, bufferDays int, excludeOrderID int64) error {
	for _, it := range items {
		if it.Type != domain.OrderItemTypeRent {
			continue
		}
		rents, err := r.Rents.ListNonCanceledByCloth(ctx, it.ClothID, false)
		if err != nil {
			return err
		}
		if booking.Conflicts(*it.DeliveryDate, it.DaysOfRent, rents, bufferDays, excludeOrderID) {
			return domain.Conflictf("garment %d is already booked around %s",
				it.ClothID, it.DeliveryDate.Format("2006-01-02"))
		}
	}
	return nil
}

// orderTotalCents is the item net sum with the order-level discount applied.
func orderTotalCents(items []domain.OrderItem, dt domain.DiscountType, dv int64) int64 {
	var sum int64
	for _, it := range items {
		sum += it.NetPriceCents()
	}
	return domain.ApplyDiscount(sum, dt, dv)
}

func validateDiscount(dt domain.DiscountType, value int64) error {
	switch dt {
	case domain.DiscountNone:
		return nil
	case domain.DiscountPercentage:
		if value < 0 || value > 100 {
			return domain.Validationf("percentage discount must be between 0 and 100")
		}
	case domain.DiscountFixed:
		if value < 0 {
			return domain.Validationf("fixed discount cannot be negative")
		}
	default:
		return domain.Validationf("unknown discount type %q", dt)
	}
	return nil
}

func assembleSnapshot(ctx context.Context, r repository.Repos, order *domain.Order) (*OrderSnapshot, error) {
	items, err := r.Orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	payments, err := r.Payments.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	custodies, err := r.Custodies.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	rents, err := r.Rents.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderSnapshot{
		Order:     *order,
		Items:     items,
		Payments:  payments,
		Custodies: custodies,
		Rents:     rents,
	}, nil
}
