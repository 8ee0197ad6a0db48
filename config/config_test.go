package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config

	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "dueday", cfg.App.Name)
	assert.Equal(t, 60, cfg.Reminder.LeadMinutes)
	assert.Equal(t, 900, cfg.Reminder.CheckIntervalSeconds)
	assert.Equal(t, 30, cfg.Reminder.CheckTimeoutSeconds)
	assert.Equal(t, "log", cfg.Reminder.Notifier)
	assert.True(t, cfg.Reminder.RestoreOnStart)
	assert.Equal(t, 3600, cfg.Cache.TTL)
	assert.Equal(t, "file://migrations/postgres", cfg.DB.Postgres.MigrationPath)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
	assert.Equal(t, "todo-notifications", cfg.Kafka.NotificationTopic)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("REMINDER_LEAD_MINUTES", "15")
	t.Setenv("REMINDER_NOTIFIER", "kafka")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")
	t.Setenv("CACHE_REDIS_PRIMARY_DB", "2")

	var cfg Config

	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, 15, cfg.Reminder.LeadMinutes)
	assert.Equal(t, "kafka", cfg.Reminder.Notifier)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, 2, cfg.Cache.Redis.Primary.DB)
}

func TestConfigRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("REMINDER_LEAD_MINUTES", "soon")

	var cfg Config

	assert.Error(t, envconfig.Process("", &cfg))
}
