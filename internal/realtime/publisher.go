// Package realtime pushes order events to connected observers.
package realtime

import (
	"context"
	"errors"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

// Publisher delivers an event on a best-effort basis: no acknowledgement,
// no replay for observers that connect later.
type Publisher interface {
	PublishEvent(ctx context.Context, evt domain.Event) error
}

// Fanout publishes to every target and joins their failures. A failing target
// does not stop the others.
type Fanout []Publisher

func (f Fanout) PublishEvent(ctx context.Context, evt domain.Event) error {
	var errs []error
	for _, p := range f {
		if err := p.PublishEvent(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ Publisher = Fanout(nil)
	_ Publisher = (*Hub)(nil)
	_ Publisher = (*RedisRelay)(nil)
)
