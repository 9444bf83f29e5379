package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"

	"github.com/google/uuid"
)

type custodyService struct {
	store repository.Store
}

func NewCustodyService(store repository.Store) CustodyService {
	return &custodyService{store: store}
}

func (s *custodyService) CreateCustody(ctx context.Context, orderID int64, in CreateCustodyInput) (*domain.Custody, error) {
	switch in.Type {
	case domain.CustodyTypeMoney, domain.CustodyTypeItem, domain.CustodyTypeDocument:
	default:
		return nil, domain.Validationf("unknown custody type %q", in.Type)
	}
	if in.ValueCents < 0 {
		return nil, domain.Validationf("custody value cannot be negative")
	}
	if in.Type == domain.CustodyTypeMoney && in.ValueCents == 0 {
		return nil, domain.Validationf("a money custody needs a value")
	}

	var custody *domain.Custody
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		order, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.PreDelivery() {
			return domain.InvalidStatef("custodies are taken before delivery; order %d is %s", order.ID, order.Status)
		}
		c := &domain.Custody{
			OrderID:     order.ID,
			Type:        in.Type,
			Description: in.Description,
			ValueCents:  in.ValueCents,
			Status:      domain.CustodyStatusPending,
		}
		if err := r.Custodies.Create(ctx, c); err != nil {
			return err
		}
		custody = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return custody, nil
}

func (s *custodyService) Decide(ctx context.Context, custodyID int64, outcome domain.CustodyStatus) (*domain.Custody, error) {
	if outcome != domain.CustodyStatusReturned && outcome != domain.CustodyStatusForfeited {
		return nil, domain.Validationf("custody outcome must be returned or forfeited, not %q", outcome)
	}

	var custody *domain.Custody
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		c, err := r.Custodies.GetByID(ctx, custodyID)
		if err != nil {
			return err
		}
		if c.Status != domain.CustodyStatusPending {
			return domain.InvalidStatef("custody %d was already decided as %s", c.ID, c.Status)
		}
		order, err := r.Orders.GetByID(ctx, c.OrderID)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderStatusDelivered {
			return domain.Preconditionf("custody decisions require a delivered order; order %d is %s", order.ID, order.Status)
		}
		c.Status = outcome
		if err := r.Custodies.Update(ctx, c); err != nil {
			return err
		}
		custody = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return custody, nil
}

func (s *custodyService) AttachReturnProof(ctx context.Context, custodyID int64, in ReturnProofInput) (*domain.CustodyReturn, error) {
	if in.CustomerName == "" {
		return nil, domain.Validationf("return proof needs the customer name")
	}

	var proof *domain.CustodyReturn
	err := s.store.WithinTx(ctx, func(r repository.Repos) error {
		c, err := r.Custodies.GetByID(ctx, custodyID)
		if err != nil {
			return err
		}
		if c.Status != domain.CustodyStatusReturned {
			return domain.InvalidStatef("return proof applies to a returned custody; custody %d is %s", c.ID, c.Status)
		}
		ret := &domain.CustodyReturn{
			CustodyID:        c.ID,
			ReturnedAt:       time.Now(),
			PhotoRef:         in.PhotoRef,
			CustomerName:     in.CustomerName,
			CustomerIDNumber: in.CustomerIDNumber,
		}
		if ret.PhotoRef == "" {
			ret.PhotoRef = uuid.NewString()
		}
		if err := r.Custodies.CreateReturn(ctx, ret); err != nil {
			return err
		}
		proof = ret
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proof, nil
}

// custodiesAllowDelivery gates the delivered transition: at least one custody,
// all of them still pending.
func custodiesAllowDelivery(custodies []domain.Custody) error {
	if len(custodies) == 0 {
		return domain.Preconditionf("delivery requires a custody deposit on the order")
	}
	for _, c := range custodies {
		if c.Status != domain.CustodyStatusPending {
			return domain.Preconditionf("custody %d was already decided as %s", c.ID, c.Status)
		}
	}
	return nil
}

// custodiesAllowFinish gates the finished transition: nothing pending, and
// every returned custody backed by at least one proof record.
func custodiesAllowFinish(custodies []domain.Custody, proofCounts map[int64]int) error {
	for _, c := range custodies {
		switch c.Status {
		case domain.CustodyStatusPending:
			return domain.Preconditionf("custody %d is still pending", c.ID)
		case domain.CustodyStatusReturned:
			if proofCounts[c.ID] == 0 {
				return domain.Preconditionf("custody %d was returned without a proof record", c.ID)
			}
		}
	}
	return nil
}
