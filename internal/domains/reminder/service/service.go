package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dueday/config"
	"dueday/infras/otel"
	"dueday/infras/timer"
	"dueday/internal/domains/reminder/model"
	"dueday/internal/domains/reminder/notifier"
	todoModel "dueday/internal/domains/todo/model"
	"dueday/shared/constant"
	"dueday/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultCheckTimeout = 30 * time.Second

var errUnsavedItem = errors.New("todo item has no id")

// TodoSource is the read side of the todo store the scheduler needs.
type TodoSource interface {
	List(ctx context.Context, view todoModel.View) ([]todoModel.TodoItem, error)
	ListDueBy(ctx context.Context, threshold time.Time) ([]todoModel.TodoItem, error)
}

// Scheduler keeps at most one pending reminder per todo item. Reminders fire one lead
// period before the due date and run a due check when they do.
type Scheduler interface {
	Schedule(ctx context.Context, item todoModel.TodoItem) error
	Cancel(ctx context.Context, id int64)
	Restore(ctx context.Context) (int, error)
	CheckDue(ctx context.Context) (int, error)
}

type serviceImpl struct {
	source       TodoSource
	timer        timer.Timer
	clock        timer.Clock
	notifier     notifier.Notifier
	otel         otel.Otel
	lead         time.Duration
	checkTimeout time.Duration
}

func New(source TodoSource, tm timer.Timer, clock timer.Clock, notify notifier.Notifier, cfg *config.Config, otel otel.Otel) Scheduler {
	checkTimeout := time.Duration(cfg.Reminder.CheckTimeoutSeconds) * time.Second
	if checkTimeout <= 0 {
		checkTimeout = defaultCheckTimeout
	}

	return &serviceImpl{
		source:       source,
		timer:        tm,
		clock:        clock,
		notifier:     notify,
		otel:         otel,
		lead:         time.Duration(cfg.Reminder.LeadMinutes) * time.Minute,
		checkTimeout: checkTimeout,
	}
}

// Schedule registers the reminder for item, replacing any pending one. Nothing is
// registered when the reminder time has already passed.
func (s *serviceImpl) Schedule(ctx context.Context, item todoModel.TodoItem) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Schedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if item.ID == 0 {
		return failure.Scheduling(errUnsavedItem) //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, item.ID)

	s.schedule(item)

	return nil
}

func (s *serviceImpl) schedule(item todoModel.TodoItem) bool {
	key := todoModel.NotificationKey(item.ID)
	fireAt := item.DueDate.Add(-s.lead)

	if !fireAt.After(s.clock.Now()) {
		// a pending reminder for an earlier due date is now stale
		s.timer.Cancel(key)

		log.Debug().Int64("todoID", item.ID).Time("fireAt", fireAt).Msg("reminder time already passed, not scheduling")

		return false
	}

	s.timer.Schedule(key, fireAt, s.fire)

	log.Debug().Int64("todoID", item.ID).Time("fireAt", fireAt).Msg("reminder scheduled")

	return true
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) {
	_, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Cancel")
	defer scope.End()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	if s.timer.Cancel(todoModel.NotificationKey(id)) {
		log.Debug().Int64("todoID", id).Msg("reminder cancelled")
	}
}

// Restore re-registers reminders for every active item. Timers live in memory, so this
// runs once at startup.
func (s *serviceImpl) Restore(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Restore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.source.List(ctx, todoModel.ViewActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active todos")

		return 0, failure.Scheduling(fmt.Errorf("failed to list active todos: %w", err)) //nolint:wrapcheck
	}

	for _, item := range items {
		if s.schedule(item) {
			count++
		}
	}

	log.Info().Int("active", len(items)).Int("scheduled", count).Msg("reminders restored")

	return count, nil
}

// CheckDue notifies every incomplete item due within the lead window that is not yet
// overdue. A failed notification is logged and the pass continues.
func (s *serviceImpl) CheckDue(ctx context.Context) (sent int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".CheckDue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	runID := uuid.NewString()
	now := s.clock.Now()

	scope.SetAttribute(constant.OtelRunIDAttributeKey, runID)

	logger := log.With().Str("runID", runID).Logger()

	items, err := s.source.ListDueBy(ctx, now.Add(s.lead))
	if err != nil {
		logger.Error().Err(err).Msg("failed to list todos due soon")

		return 0, failure.Scheduling(fmt.Errorf("failed to list todos due soon: %w", err)) //nolint:wrapcheck
	}

	for _, item := range items {
		if item.IsCompleted || !item.DueDate.After(now) {
			continue
		}

		if err := s.notifier.Notify(ctx, model.NewNotification(item, runID, now)); err != nil {
			logger.Error().Err(err).Int64("todoID", item.ID).Msg("failed to send reminder")

			continue
		}

		sent++
	}

	logger.Info().Int("candidates", len(items)).Int("sent", sent).Msg("due check finished")

	return sent, nil
}

func (s *serviceImpl) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), s.checkTimeout)
	defer cancel()

	if _, err := s.CheckDue(ctx); err != nil {
		log.Error().Err(err).Msg("reminder due check failed")
	}
}
