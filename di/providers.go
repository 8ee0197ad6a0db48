package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dueday/config"
	"dueday/helper"
	"dueday/infras/kafka"
	"dueday/infras/otel"
	"dueday/infras/postgres"
	"dueday/infras/redis"
	"dueday/infras/timer"
	"dueday/shared/cache"
	"dueday/shared/constant"

	"github.com/rs/zerolog/log"
)

const otelShutdownTimeout = 5 * time.Second

var errRedisRequired = errors.New("redis notifier requires CACHE_REDIS_PRIMARY_HOST")

func provideDatabase(cfg *config.Config) (*postgres.Connection, func(), error) {
	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	conn, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}, nil
}

func provideOtel(cfg *config.Config) (otel.Otel, func(), error) {
	o, err := otel.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return o, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := o.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}, nil
}

// provideCache connects to Redis when a host is configured and falls back to a cache
// that stores nothing.
func provideCache(cfg *config.Config, o otel.Otel) (cache.RedisCache, func(), error) {
	if cfg.Cache.Redis.Primary.Host == constant.Empty {
		if cfg.Reminder.Notifier == constant.NotifierRedis {
			return nil, nil, errRedisRequired
		}

		log.Warn().Msg("No Redis configured, caching disabled")

		return cache.NewNoop(), func() {}, nil
	}

	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return cache.NewRedisCache(client, o), func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis")
		}
	}, nil
}

// provideKafka returns a nil client unless the kafka notifier is selected.
func provideKafka(cfg *config.Config) (kafka.Client, func(), error) {
	if cfg.Reminder.Notifier != constant.NotifierKafka {
		return nil, func() {}, nil
	}

	client, err := kafka.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka")
		}
	}, nil
}

func provideClock() timer.Clock {
	return timer.SystemClock
}
