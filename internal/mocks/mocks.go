package mocks

import (
	"context"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockCategoryRepository struct {
	mock.Mock
}

type MockProductRepository struct {
	mock.Mock
}

type MockPincodeRepository struct {
	mock.Mock
}

type MockOrderLog struct {
	mock.Mock
}

type MockNotifier struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockOrderLog) Append(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPublisher) PublishEvent(ctx context.Context, evt domain.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveBatch(ctx context.Context, cs []*domain.Category) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, ps []*domain.Product) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPincodeRepository) List(ctx context.Context) ([]domain.Pincode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pincode), args.Error(1)
}

func (m *MockPincodeRepository) FindByCode(ctx context.Context, code string) (*domain.Pincode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pincode), args.Error(1)
}

func (m *MockPincodeRepository) Save(ctx context.Context, p *domain.Pincode) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPincodeRepository) SaveBatch(ctx context.Context, ps []*domain.Pincode) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockPincodeRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
