package realtime

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingPublisher) PublishEvent(_ context.Context, evt domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recordingPublisher) received() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

func TestRedisRelay_ForwardsToLocal(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	local := &recordingPublisher{}
	relay := NewRedisRelay(rdb, "orders.events.test."+uuid.NewString(), local, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = relay.Run(ctx) }()

	evt := domain.Event{
		Name: domain.EventOrderStatusUpdated,
		Data: domain.OrderStatusUpdated{OrderID: "o1", Status: domain.StatusPacked},
	}
	// Publishing before the subscription is live would bypass redis.
	require.Eventually(t, relay.subscribed.Load, 5*time.Second, 20*time.Millisecond)
	require.NoError(t, relay.PublishEvent(ctx, evt))
	require.Eventually(t, func() bool {
		return len(local.received()) > 0
	}, 5*time.Second, 20*time.Millisecond)

	got := local.received()[0]
	assert.Equal(t, domain.EventOrderStatusUpdated, got.Name)
	assert.JSONEq(t, `{"order_id":"o1","status":"packed"}`, string(got.Data.(json.RawMessage)))
}

func TestRedisRelay_FallsBackToLocal(t *testing.T) {
	// Nothing listens on port 1, so the subscription cannot be established.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	local := &recordingPublisher{}
	relay := NewRedisRelay(rdb, DefaultRelayChannel, local, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.Error(t, relay.Run(ctx))

	evt := domain.Event{
		Name: domain.EventOrderStatusUpdated,
		Data: domain.OrderStatusUpdated{OrderID: "o1", Status: domain.StatusPacked},
	}
	require.NoError(t, relay.PublishEvent(ctx, evt))

	got := local.received()
	require.Len(t, got, 1)
	assert.Equal(t, evt, got[0])
}
