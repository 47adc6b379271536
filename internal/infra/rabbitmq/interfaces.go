package rabbitmq

import (
	"context"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
	PublishEvent(ctx context.Context, evt domain.Event) error
}

var _ PublisherInterface = (*Publisher)(nil)
