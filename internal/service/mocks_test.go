package service

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"

	"github.com/stretchr/testify/mock"
)

// mockStore satisfies repository.Store over mocked repositories; WithinTx
// simply runs the function so precondition failures surface as returned
// errors.
type mockStore struct {
	repos repository.Repos
}

func (s *mockStore) Repos() repository.Repos {
	return s.repos
}

func (s *mockStore) WithinTx(ctx context.Context, fn func(r repository.Repos) error) error {
	return fn(s.repos)
}

func newMockStore() (*mockStore, *MockOrderRepo, *MockPaymentRepo, *MockCustodyRepo, *MockRentRepo, *MockClothRepo, *MockClientRepo) {
	orders := new(MockOrderRepo)
	payments := new(MockPaymentRepo)
	custodies := new(MockCustodyRepo)
	rents := new(MockRentRepo)
	cloths := new(MockClothRepo)
	clients := new(MockClientRepo)
	store := &mockStore{repos: repository.Repos{
		Orders:    orders,
		Payments:  payments,
		Custodies: custodies,
		Rents:     rents,
		Cloths:    cloths,
		Clients:   clients,
	}}
	return store, orders, payments, custodies, rents, cloths, clients
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}
func (m *MockOrderRepo) ReplaceItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}
func (m *MockOrderRepo) UpdateItemStatus(ctx context.Context, orderID, clothID int64, status domain.OrderItemStatus) error {
	args := m.Called(ctx, orderID, clothID, status)
	return args.Error(0)
}
func (m *MockOrderRepo) UpdateAllItemStatuses(ctx context.Context, orderID int64, status domain.OrderItemStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockCustodyRepo
type MockCustodyRepo struct {
	mock.Mock
}

func (m *MockCustodyRepo) Create(ctx context.Context, custody *domain.Custody) error {
	args := m.Called(ctx, custody)
	return args.Error(0)
}
func (m *MockCustodyRepo) GetByID(ctx context.Context, id int64) (*domain.Custody, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Custody), args.Error(1)
}
func (m *MockCustodyRepo) Update(ctx context.Context, custody *domain.Custody) error {
	args := m.Called(ctx, custody)
	return args.Error(0)
}
func (m *MockCustodyRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Custody, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Custody), args.Error(1)
}
func (m *MockCustodyRepo) CreateReturn(ctx context.Context, ret *domain.CustodyReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}
func (m *MockCustodyRepo) ListReturns(ctx context.Context, custodyID int64) ([]domain.CustodyReturn, error) {
	args := m.Called(ctx, custodyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustodyReturn), args.Error(1)
}

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) Create(ctx context.Context, rent *domain.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}
func (m *MockRentRepo) GetByID(ctx context.Context, id int64) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) Update(ctx context.Context, rent *domain.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}
func (m *MockRentRepo) ListNonCanceledByCloth(ctx context.Context, clothID int64, lock bool) ([]domain.Rent, error) {
	args := m.Called(ctx, clothID, lock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Rent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) CancelByOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockRentRepo) MarkOverdue(ctx context.Context, before time.Time) ([]domain.Rent, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ListActiveDueOn(ctx context.Context, day time.Time) ([]domain.Rent, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}

// MockClothRepo
type MockClothRepo struct {
	mock.Mock
}

func (m *MockClothRepo) Create(ctx context.Context, cloth *domain.Cloth) error {
	args := m.Called(ctx, cloth)
	return args.Error(0)
}
func (m *MockClothRepo) GetByID(ctx context.Context, id int64) (*domain.Cloth, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cloth), args.Error(1)
}
func (m *MockClothRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Cloth, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cloth), args.Error(1)
}
func (m *MockClothRepo) UpdateStatus(ctx context.Context, id int64, status domain.ClothStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderReceipt(ctx context.Context, to, clientName, orderNumber string, totalCents int64) error {
	args := m.Called(ctx, to, clientName, orderNumber, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error {
	args := m.Called(ctx, to, clientName, clothCode, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error {
	args := m.Called(ctx, to, clientName, clothCode, returnDate)
	return args.Error(0)
}
