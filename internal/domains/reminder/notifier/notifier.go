package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"dueday/config"
	"dueday/infras/kafka"
	"dueday/infras/otel"
	"dueday/internal/domains/reminder/model"
	"dueday/shared/cache"
	"dueday/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownBackend = errors.New("unknown notifier backend")
	ErrMissingClient  = errors.New("notifier backend client not configured")
)

// Notifier delivers a reminder to the user. Delivering twice for the same TodoID
// overwrites rather than stacks.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification) error
}

// New picks the backend named by REMINDER_NOTIFIER.
func New(cfg *config.Config, redisCache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) (Notifier, error) {
	switch cfg.Reminder.Notifier {
	case constant.NotifierLog, constant.Empty:
		return NewLog(), nil
	case constant.NotifierRedis:
		if redisCache == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClient, constant.NotifierRedis)
		}

		return NewRedis(redisCache, cfg.Reminder.NotificationTTLSeconds, otel), nil
	case constant.NotifierKafka:
		if kafkaClient == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClient, constant.NotifierKafka)
		}

		return NewKafka(kafkaClient, cfg.Kafka.NotificationTopic, otel), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Reminder.Notifier)
	}
}

type logNotifier struct{}

func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(_ context.Context, n model.Notification) error {
	log.Info().
		Int64("todoID", n.TodoID).
		Str("channel", n.Channel).
		Str("title", n.Title).
		Str("body", n.Body).
		Time("dueDate", n.DueDate).
		Str("runID", n.RunID).
		Msg("todo reminder")

	return nil
}

type redisNotifier struct {
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

// NewRedis keeps the latest notification per item at notification:todo:<id>.
func NewRedis(redisCache cache.RedisCache, ttlSeconds int, otel otel.Otel) Notifier {
	return &redisNotifier{
		cache: redisCache,
		ttl:   ttlSeconds,
		otel:  otel,
	}
}

func Key(todoID int64) string {
	return constant.CacheKeyNotificationPrefix + strconv.FormatInt(todoID, 10)
}

func (r *redisNotifier) Notify(ctx context.Context, n model.Notification) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".redis.Notify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, n.TodoID)

	if err = r.cache.Save(ctx, Key(n.TodoID), n, r.ttl); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	return nil
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewKafka publishes notifications keyed by todo id, so a compacted topic keeps one per item.
func NewKafka(client kafka.Client, topic string, otel otel.Otel) Notifier {
	return &kafkaNotifier{
		client: client,
		topic:  topic,
		otel:   otel,
	}
}

func (k *kafkaNotifier) Notify(ctx context.Context, n model.Notification) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".kafka.Notify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, n.TodoID)

	err = k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:   strconv.FormatInt(n.TodoID, 10),
		Value: n,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
