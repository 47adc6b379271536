package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const DefaultRelayChannel = "orders.events"

// RedisRelay spreads events across server replicas: PublishEvent goes to a
// redis channel and Run forwards everything on that channel to the local
// publisher, usually the Hub. While Run is not subscribed, PublishEvent
// delivers straight to the local publisher instead.
type RedisRelay struct {
	rdb        *redis.Client
	channel    string
	local      Publisher
	log        zerolog.Logger
	subscribed atomic.Bool
}

func NewRedisRelay(rdb *redis.Client, channel string, local Publisher, log zerolog.Logger) *RedisRelay {
	return &RedisRelay{rdb: rdb, channel: channel, local: local, log: log}
}

type relayedEvent struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

func (r *RedisRelay) PublishEvent(ctx context.Context, evt domain.Event) error {
	if !r.subscribed.Load() {
		return r.local.PublishEvent(ctx, evt)
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := r.rdb.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run subscribes and forwards until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe %s: %w", r.channel, err)
	}
	r.subscribed.Store(true)
	defer r.subscribed.Store(false)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var evt relayedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				r.log.Warn().Err(err).Msg("skipping malformed relayed event")
				continue
			}
			if err := r.local.PublishEvent(ctx, domain.Event{Name: evt.Name, Data: evt.Data}); err != nil {
				r.log.Warn().Err(err).Str("event", evt.Name).Msg("local delivery failed")
			}
		}
	}
}
