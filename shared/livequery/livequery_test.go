package livequery_test

import (
	"context"
	"dueday/shared/livequery"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case value, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")

		return value
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for live query result")
	}

	var zero T

	return zero
}

func TestWatch_EmitsInitialAndOnPublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := livequery.NewHub("test")

	var version atomic.Int64

	results := livequery.Watch(ctx, hub, func(context.Context) (int64, error) {
		return version.Load(), nil
	})

	assert.Equal(t, int64(0), receive(t, results))

	version.Store(1)
	hub.Publish()

	assert.Equal(t, int64(1), receive(t, results))
}

func TestWatch_SlowSubscriberSeesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := livequery.NewHub("test")

	var version atomic.Int64
	var calls atomic.Int64

	results := livequery.Watch(ctx, hub, func(context.Context) (int64, error) {
		calls.Add(1)

		return version.Load(), nil
	})

	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, time.Millisecond)

	for i := int64(1); i <= 5; i++ {
		version.Store(i)
		hub.Publish()
	}

	require.Eventually(t, func() bool {
		select {
		case value := <-results:
			return value == 5
		default:
			return false
		}
	}, waitFor, time.Millisecond)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := livequery.NewHub("test")

	results := livequery.Watch(ctx, hub, func(context.Context) (string, error) {
		return "ok", nil
	})

	assert.Equal(t, "ok", receive(t, results))
	assert.Equal(t, 1, hub.Subscribers())

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-results:
			return !ok
		default:
			return false
		}
	}, waitFor, time.Millisecond)

	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, waitFor, time.Millisecond)
}

func TestWatch_QueryErrorKeepsSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := livequery.NewHub("test")

	var fail atomic.Bool
	fail.Store(true)

	results := livequery.Watch(ctx, hub, func(context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("database error")
		}

		return "recovered", nil
	})

	fail.Store(false)
	hub.Publish()

	assert.Equal(t, "recovered", receive(t, results))
}

func TestMap(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := livequery.NewHub("test")

	results := livequery.Map(
		livequery.Watch(ctx, hub, func(context.Context) ([]int, error) {
			return []int{1, 2, 3}, nil
		}),
		func(values []int) int { return len(values) },
	)

	assert.Equal(t, 3, receive(t, results))

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-results:
			return !ok
		default:
			return false
		}
	}, waitFor, time.Millisecond)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := livequery.NewHub("test")

	assert.NotPanics(t, hub.Publish)
	assert.Equal(t, 0, hub.Subscribers())
}
