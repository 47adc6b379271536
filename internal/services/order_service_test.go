package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName: "Ravi",
		Phone:        "9876543210",
		Address:      "12 MG Road",
		Pincode:      "500001",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Chicken Breast", Price: 280, Quantity: 1, Unit: "500g"},
			{ProductID: "p2", Name: "Mutton Keema", Price: 700, Quantity: 1},
		},
		Total: ptr(560.0),
	}
}

type orderMocks struct {
	repo     *mocks.MockOrderRepository
	orderLog *mocks.MockOrderLog
	notifier *mocks.MockNotifier
	events   *mocks.MockPublisher
}

func newOrderMocks() orderMocks {
	return orderMocks{
		repo:     new(mocks.MockOrderRepository),
		orderLog: new(mocks.MockOrderLog),
		notifier: new(mocks.MockNotifier),
		events:   new(mocks.MockPublisher),
	}
}

func (m orderMocks) service() *OrderService {
	return NewOrderService(m.repo, m.orderLog, m.notifier, m.events, zerolog.Nop())
}

func (m orderMocks) assertExpectations(t *testing.T) {
	m.repo.AssertExpectations(t)
	m.orderLog.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
	m.events.AssertExpectations(t)
}

func TestOrderService_CreateOrder(t *testing.T) {
	anyOrder := mock.AnythingOfType("*domain.Order")
	placed := mock.MatchedBy(func(e domain.Event) bool { return e.Name == domain.EventOrderPlaced })

	tests := []struct {
		name          string
		input         func() CreateOrderInput
		setupMocks    func(m orderMocks)
		expectedError error
		expectedKind  error
	}{
		{
			name:  "successful order creation",
			input: validOrderInput,
			setupMocks: func(m orderMocks) {
				m.repo.On("Save", mock.Anything, anyOrder).Return(nil)
				m.orderLog.On("Append", mock.Anything, anyOrder).Return(nil)
				m.notifier.On("NotifyOrder", mock.Anything, anyOrder).Return(nil)
				m.events.On("PublishEvent", mock.Anything, placed).Return(nil)
			},
		},
		{
			name:  "notification gateway unreachable still succeeds",
			input: validOrderInput,
			setupMocks: func(m orderMocks) {
				m.repo.On("Save", mock.Anything, anyOrder).Return(nil)
				m.orderLog.On("Append", mock.Anything, anyOrder).Return(nil)
				m.notifier.On("NotifyOrder", mock.Anything, anyOrder).Return(errors.New("dial tcp: connection refused"))
				m.events.On("PublishEvent", mock.Anything, placed).Return(nil)
			},
		},
		{
			name:  "every side effect failing still succeeds",
			input: validOrderInput,
			setupMocks: func(m orderMocks) {
				m.repo.On("Save", mock.Anything, anyOrder).Return(nil)
				m.orderLog.On("Append", mock.Anything, anyOrder).Return(errors.New("disk full"))
				m.notifier.On("NotifyOrder", mock.Anything, anyOrder).Return(errors.New("timeout"))
				m.events.On("PublishEvent", mock.Anything, placed).Return(errors.New("hub closed"))
			},
		},
		{
			name:  "storage failure aborts before side effects",
			input: validOrderInput,
			setupMocks: func(m orderMocks) {
				m.repo.On("Save", mock.Anything, anyOrder).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "missing customer name",
			input: func() CreateOrderInput {
				in := validOrderInput()
				in.CustomerName = "  "
				return in
			},
			setupMocks:   func(orderMocks) {},
			expectedKind: domain.ErrValidation,
		},
		{
			name: "missing total",
			input: func() CreateOrderInput {
				in := validOrderInput()
				in.Total = nil
				return in
			},
			setupMocks:   func(orderMocks) {},
			expectedKind: domain.ErrValidation,
		},
		{
			name: "no items",
			input: func() CreateOrderInput {
				in := validOrderInput()
				in.Items = nil
				return in
			},
			setupMocks:   func(orderMocks) {},
			expectedKind: domain.ErrValidation,
		},
		{
			name: "zero quantity item",
			input: func() CreateOrderInput {
				in := validOrderInput()
				in.Items[0].Quantity = 0
				return in
			},
			setupMocks:   func(orderMocks) {},
			expectedKind: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newOrderMocks()
			tt.setupMocks(m)

			result, err := m.service().CreateOrder(context.Background(), tt.input())

			switch {
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			case tt.expectedKind != nil:
				assert.ErrorIs(t, err, tt.expectedKind)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, 560.0, result.Total)
				assert.Equal(t, domain.StatusPending, result.Status)
				assert.Equal(t, domain.DefaultPaymentMode, result.PaymentMode)
				assert.Equal(t, domain.DefaultUnit, result.Items[1].Unit)
				createdAt, perr := time.Parse(domain.TimestampLayout, result.CreatedAt)
				require.NoError(t, perr)
				assert.WithinDuration(t, time.Now(), createdAt, 2*time.Second)
			}

			m.assertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_StepOrder(t *testing.T) {
	m := newOrderMocks()
	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}
	m.repo.On("Save", mock.Anything, mock.Anything).Return(nil).Run(record("persist"))
	m.orderLog.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full")).Run(record("log"))
	m.notifier.On("NotifyOrder", mock.Anything, mock.Anything).Return(nil).Run(record("notify"))
	m.events.On("PublishEvent", mock.Anything, mock.Anything).Return(nil).Run(record("broadcast"))

	_, err := m.service().CreateOrder(context.Background(), validOrderInput())

	require.NoError(t, err)
	assert.Equal(t, []string{"persist", "log", "notify", "broadcast"}, calls)
}

func TestOrderService_CreateOrder_BroadcastsPersistedOrder(t *testing.T) {
	m := newOrderMocks()
	var saved *domain.Order
	m.repo.On("Save", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Order)
	})
	m.orderLog.On("Append", mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("NotifyOrder", mock.Anything, mock.Anything).Return(nil)
	m.events.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	result, err := m.service().CreateOrder(ctx, validOrderInput())
	cancel()

	require.NoError(t, err)
	assert.Same(t, saved, result)
	evt := m.events.Calls[0].Arguments.Get(1).(domain.Event)
	assert.Equal(t, domain.EventOrderPlaced, evt.Name)
	assert.Same(t, saved, evt.Data)
}

func TestOrderService_SetStatus(t *testing.T) {
	tests := []struct {
		name          string
		orderID       string
		status        domain.OrderStatus
		setupMocks    func(m orderMocks)
		expectedError error
	}{
		{
			name:    "forward transition",
			orderID: "o1",
			status:  domain.StatusConfirmed,
			setupMocks: func(m orderMocks) {
				m.repo.On("UpdateStatus", mock.Anything, "o1", domain.StatusConfirmed).Return(true, nil)
				m.events.On("PublishEvent", mock.Anything, domain.Event{
					Name: domain.EventOrderStatusUpdated,
					Data: domain.OrderStatusUpdated{OrderID: "o1", Status: domain.StatusConfirmed},
				}).Return(nil)
			},
		},
		{
			name:    "backward transition is allowed",
			orderID: "o1",
			status:  domain.StatusPending,
			setupMocks: func(m orderMocks) {
				m.repo.On("UpdateStatus", mock.Anything, "o1", domain.StatusPending).Return(true, nil)
				m.events.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:    "broadcast failure is swallowed",
			orderID: "o1",
			status:  domain.StatusCancelled,
			setupMocks: func(m orderMocks) {
				m.repo.On("UpdateStatus", mock.Anything, "o1", domain.StatusCancelled).Return(true, nil)
				m.events.On("PublishEvent", mock.Anything, mock.Anything).Return(errors.New("hub closed"))
			},
		},
		{
			name:          "invalid status",
			orderID:       "o1",
			status:        "shipped",
			setupMocks:    func(orderMocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:    "unknown order",
			orderID: "missing",
			status:  domain.StatusPacked,
			setupMocks: func(m orderMocks) {
				m.repo.On("UpdateStatus", mock.Anything, "missing", domain.StatusPacked).Return(false, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:    "repository error",
			orderID: "o1",
			status:  domain.StatusPacked,
			setupMocks: func(m orderMocks) {
				m.repo.On("UpdateStatus", mock.Anything, "o1", domain.StatusPacked).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newOrderMocks()
			tt.setupMocks(m)

			err := m.service().SetStatus(context.Background(), tt.orderID, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrValidation) || errors.Is(tt.expectedError, domain.ErrNotFound) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.Contains(t, err.Error(), tt.expectedError.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			m.assertExpectations(t)
		})
	}
}

func TestOrderService_SetStatus_AcceptsEveryStatus(t *testing.T) {
	for _, status := range domain.OrderStatuses {
		m := newOrderMocks()
		m.repo.On("UpdateStatus", mock.Anything, "o1", status).Return(true, nil)
		m.events.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, m.service().SetStatus(context.Background(), "o1", status), status)
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	m := newOrderMocks()
	filter := domain.OrderFilter{Date: "2024-05-01", Status: domain.StatusPending}
	orders := []domain.Order{{ID: "o2"}, {ID: "o1"}}
	m.repo.On("List", mock.Anything, filter).Return(orders, nil)

	result, err := m.service().ListOrders(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, orders, result)
	m.assertExpectations(t)
}
