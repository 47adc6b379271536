package infra

import (
	"context"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

type OrderNotifierInterface interface {
	NotifyOrder(ctx context.Context, order *domain.Order) error
}

var _ OrderNotifierInterface = (*WhatsAppClient)(nil)

type OrderLogInterface interface {
	Append(ctx context.Context, order *domain.Order) error
}
