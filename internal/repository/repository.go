package repository

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ReplaceItems(ctx context.Context, orderID int64, items []domain.OrderItem) error
	UpdateItemStatus(ctx context.Context, orderID, clothID int64, status domain.OrderItemStatus) error
	UpdateAllItemStatuses(ctx context.Context, orderID int64, status domain.OrderItemStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error)
}

type CustodyRepository interface {
	Create(ctx context.Context, custody *domain.Custody) error
	GetByID(ctx context.Context, id int64) (*domain.Custody, error)
	Update(ctx context.Context, custody *domain.Custody) error
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Custody, error)
	CreateReturn(ctx context.Context, ret *domain.CustodyReturn) error
	ListReturns(ctx context.Context, custodyID int64) ([]domain.CustodyReturn, error)
}

type RentRepository interface {
	Create(ctx context.Context, rent *domain.Rent) error
	GetByID(ctx context.Context, id int64) (*domain.Rent, error)
	Update(ctx context.Context, rent *domain.Rent) error
	// ListNonCanceledByCloth returns the rents that participate in conflict
	// detection for a garment. With lock set, the rows are read FOR UPDATE so
	// two concurrent deliveries cannot double-book the garment.
	ListNonCanceledByCloth(ctx context.Context, clothID int64, lock bool) ([]domain.Rent, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Rent, error)
	CancelByOrder(ctx context.Context, orderID int64) error
	// MarkOverdue flips active rents whose return date lies before the given
	// day to OVERDUE and returns the affected rows.
	MarkOverdue(ctx context.Context, before time.Time) ([]domain.Rent, error)
	ListActiveDueOn(ctx context.Context, day time.Time) ([]domain.Rent, error)
}

type ClothRepository interface {
	Create(ctx context.Context, cloth *domain.Cloth) error
	GetByID(ctx context.Context, id int64) (*domain.Cloth, error)
	// GetByIDForUpdate reads the garment row FOR UPDATE. Booking takes this
	// lock before scanning the garment's rents: with no rent rows yet there
	// is nothing else to lock, so without it two first-time deliveries could
	// both see an empty calendar and double-book the garment.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cloth, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ClothStatus) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// Repos bundles every repository reachable inside one transaction scope.
type Repos struct {
	Orders    OrderRepository
	Payments  PaymentRepository
	Custodies CustodyRepository
	Rents     RentRepository
	Cloths    ClothRepository
	Clients   ClientRepository
}

// Store exposes the repositories plus the transactional boundary every order
// lifecycle transition runs inside. A returned error rolls the transaction
// back with zero partial writes.
type Store interface {
	Repos() Repos
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
