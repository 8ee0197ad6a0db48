package di

import (
	"context"
	"testing"

	"dueday/config"
	"dueday/infras/otel/mocks"
	"dueday/shared/cache"
	"dueday/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideCache(t *testing.T) {
	t.Run("no redis host falls back to noop", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Reminder.Notifier = constant.NotifierLog

		c, cleanup, err := provideCache(cfg, mocks.NewOtel())
		require.NoError(t, err)
		defer cleanup()

		var value string
		assert.ErrorIs(t, c.Get(context.Background(), "todo:1", &value), cache.ErrMiss)
	})

	t.Run("redis notifier needs a host", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Reminder.Notifier = constant.NotifierRedis

		_, _, err := provideCache(cfg, mocks.NewOtel())
		assert.ErrorIs(t, err, errRedisRequired)
	})
}

func TestProvideKafka_OnlyForKafkaNotifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Reminder.Notifier = constant.NotifierLog

	client, cleanup, err := provideKafka(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, client)
}
