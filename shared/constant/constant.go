package constant

import (
	"time"
)

const (
	DefaultAppName = "dueday"
)

const (
	FieldLastModified = "last_modified"
)

const (
	PqErrorCodeCheckViolation = "23514"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelSchedulerScopeName  = "scheduler"
	OtelNotifierScopeName   = "notifier"
	OtelWorkerScopeName     = "worker"

	OtelQueryAttributeKey  = "query"
	OtelTodoIDAttributeKey = "todo.id"
	OtelRunIDAttributeKey  = "run.id"
)

const (
	CacheKeyTodoPrefix         = "todo:"
	CacheKeyNotificationPrefix = "notification:todo:"
)

const (
	NotifierLog   = "log"
	NotifierRedis = "redis"
	NotifierKafka = "kafka"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
