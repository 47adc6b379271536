package services

import (
	"context"
	"strings"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/infra"
	"github.com/ShivChilu/chicken-shop/internal/realtime"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrOrderNotFound = domain.NotFound("Order not found")

type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	Pincode      string
	Items        []domain.OrderItem
	// Total is taken as sent by the client; it is not recomputed from items.
	Total       *float64
	PaymentMode string
}

type OrderService struct {
	repo     repository.OrderRepository
	orderLog infra.OrderLogInterface
	notifier infra.OrderNotifierInterface
	events   realtime.Publisher
	log      zerolog.Logger
	now      func() time.Time
}

func NewOrderService(r repository.OrderRepository, l infra.OrderLogInterface, n infra.OrderNotifierInterface, e realtime.Publisher, log zerolog.Logger) *OrderService {
	return &OrderService{
		repo:     r,
		orderLog: l,
		notifier: n,
		events:   e,
		log:      log,
		now:      time.Now,
	}
}

// CreateOrder persists the order, then appends it to the order log, notifies
// the shop owner and broadcasts it, strictly in that order. Only the persist
// step can fail the call; the later steps are logged and skipped on error.
func (u *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Address:      in.Address,
		Pincode:      in.Pincode,
		Items:        make([]domain.OrderItem, len(in.Items)),
		Total:        *in.Total,
		Status:       domain.StatusPending,
		PaymentMode:  in.PaymentMode,
		CreatedAt:    domain.Timestamp(u.now()),
	}
	if order.PaymentMode == "" {
		order.PaymentMode = domain.DefaultPaymentMode
	}
	for i, it := range in.Items {
		if it.Unit == "" {
			it.Unit = domain.DefaultUnit
		}
		order.Items[i] = it
	}

	if err := u.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	// The order is committed; a client hanging up must not cut the
	// follow-up steps short.
	after := context.WithoutCancel(ctx)
	log := u.log.With().Str("order_id", order.ID).Logger()

	if err := u.orderLog.Append(after, order); err != nil {
		log.Warn().Err(err).Msg("failed to append order log")
	}

	if err := u.notifier.NotifyOrder(after, order); err != nil {
		log.Warn().Err(err).Msg("failed to send whatsapp notification")
	} else {
		log.Info().Msg("whatsapp notification sent")
	}

	if err := u.events.PublishEvent(after, domain.Event{Name: domain.EventOrderPlaced, Data: order}); err != nil {
		log.Warn().Err(err).Msg("failed to broadcast order")
	}

	return order, nil
}

func validateOrder(in CreateOrderInput) error {
	for _, f := range []string{in.CustomerName, in.Phone, in.Address, in.Pincode} {
		if strings.TrimSpace(f) == "" {
			return domain.Validation("All fields are required")
		}
	}
	if in.Total == nil || len(in.Items) == 0 {
		return domain.Validation("All fields are required")
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Name == "" || it.Price < 0 || it.Quantity < 1 {
			return domain.Validation("Each item needs a product_id, name, non-negative price and positive quantity")
		}
	}
	return nil
}

// SetStatus accepts any of the known statuses regardless of the current one.
func (u *OrderService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return domain.Validation("Invalid status. Must be one of: " + domain.StatusList())
	}

	found, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	evt := domain.Event{
		Name: domain.EventOrderStatusUpdated,
		Data: domain.OrderStatusUpdated{OrderID: id, Status: status},
	}
	if err := u.events.PublishEvent(context.WithoutCancel(ctx), evt); err != nil {
		u.log.Warn().Err(err).Str("order_id", id).Msg("failed to broadcast status update")
	}
	return nil
}

func (u *OrderService) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	return u.repo.List(ctx, f)
}
