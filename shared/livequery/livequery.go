// Package livequery re-delivers query results to subscribers whenever the underlying data
// changes. Writers call Publish after committing; each subscriber re-runs its query and
// receives the fresh result set. Subscribers that fall behind only see the latest set, so a
// slow reader never blocks a writer.
package livequery

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type QueryFunc[T any] func(ctx context.Context) (T, error)

type Hub struct {
	name   string
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan struct{}
}

func NewHub(name string) *Hub {
	return &Hub{
		name: name,
		subs: map[uint64]chan struct{}{},
	}
}

// Publish signals every subscriber that the data changed.
func (h *Hub) Publish() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, signal := range h.subs {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (h *Hub) subscribe() (uint64, <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	signal := make(chan struct{}, 1)
	h.subs[h.nextID] = signal

	return h.nextID, signal
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs, id)
}

// Watch runs query immediately and again after every Publish on hub, sending each result on
// the returned channel. The channel is closed once ctx is done. Failed queries are logged
// and skipped; the subscription stays open.
func Watch[T any](ctx context.Context, hub *Hub, query QueryFunc[T]) <-chan T {
	out := make(chan T, 1)
	id, signal := hub.subscribe()

	go func() {
		defer close(out)
		defer hub.unsubscribe(id)

		for {
			result, err := query(ctx)

			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				log.Error().Err(err).Str("hub", hub.name).Msg("live query failed")
			default:
				offer(out, result)
			}

			select {
			case <-ctx.Done():
				return
			case <-signal:
			}
		}
	}()

	return out
}

// Map converts every value received from src with fn. The result closes when src closes.
func Map[S, D any](src <-chan S, fn func(S) D) <-chan D {
	out := make(chan D, 1)

	go func() {
		defer close(out)

		for value := range src {
			offer(out, fn(value))
		}
	}()

	return out
}

// offer replaces any undelivered value in out with value. out must have capacity 1 and a
// single sender.
func offer[T any](out chan T, value T) {
	for {
		select {
		case out <- value:
			return
		default:
		}

		select {
		case <-out:
		default:
		}
	}
}
