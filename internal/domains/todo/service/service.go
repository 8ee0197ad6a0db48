package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dueday/config"
	"dueday/infras/otel"
	"dueday/infras/timer"
	reminderService "dueday/internal/domains/reminder/service"
	"dueday/internal/domains/todo/model"
	"dueday/internal/domains/todo/model/dto"
	"dueday/internal/domains/todo/repository"
	"dueday/shared/cache"
	"dueday/shared/constant"
	"dueday/shared/failure"
	"dueday/shared/livequery"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (int64, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	List(ctx context.Context, view model.View) (dto.GetTodosResponse, error)
	WatchAll(ctx context.Context) <-chan []dto.TodoResponse
	WatchActive(ctx context.Context) <-chan []dto.TodoResponse
	WatchCompleted(ctx context.Context) <-chan []dto.TodoResponse
	Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) error
	ToggleCompletion(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DueBy(ctx context.Context, threshold time.Time) ([]dto.TodoResponse, error)
}

type serviceImpl struct {
	repo      repository.Todo
	scheduler reminderService.Scheduler
	cache     cache.RedisCache
	clock     timer.Clock
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Todo, scheduler reminderService.Scheduler, cache cache.RedisCache, clock timer.Clock, cfg *config.Config, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:      repo,
		scheduler: scheduler,
		cache:     cache,
		clock:     clock,
		cfg:       cfg,
		otel:      otel,
	}
}

func cacheKey(id int64) string {
	return constant.CacheKeyTodoPrefix + strconv.FormatInt(id, 10)
}

// storeError classifies a repository error. NotFound passes through unchanged and rows
// rejected by a table constraint become validation failures.
func storeError(err error) error {
	if failure.Is(err, failure.CodeNotFound) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeCheckViolation {
		return failure.ValidationFromError(err) //nolint:wrapcheck
	}

	return failure.Store(err) //nolint:wrapcheck
}

func toResponses(items []model.TodoItem) []dto.TodoResponse {
	res := make([]dto.TodoResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	item := req.ToModel(s.clock.Now())

	id, err = s.repo.Insert(ctx, item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return 0, fmt.Errorf("failed to create todo: %w", storeError(err))
	}

	item.ID = id
	s.schedule(ctx, item)

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := cacheKey(id)

	err = s.cache.Get(ctx, key, &res)
	if err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for todo")

		return res, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to read todo from cache")
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get todo: %w", storeError(err))
	}

	res.FromModel(item)

	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save todo to cache")
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, view model.View) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.List(ctx, view)
	if err != nil {
		log.Error().Err(err).Str("view", view.String()).Msg("failed to list todos")

		return res, fmt.Errorf("failed to list todos: %w", storeError(err))
	}

	res.FromModels(items)

	return res, nil
}

func (s *serviceImpl) watch(ctx context.Context, view model.View) <-chan []dto.TodoResponse {
	return livequery.Map(s.repo.Watch(ctx, view), toResponses)
}

// WatchAll streams every item ordered by due date.
func (s *serviceImpl) WatchAll(ctx context.Context) <-chan []dto.TodoResponse {
	return s.watch(ctx, model.ViewAll)
}

func (s *serviceImpl) WatchActive(ctx context.Context) <-chan []dto.TodoResponse {
	return s.watch(ctx, model.ViewActive)
}

// WatchCompleted streams completed items, most recently due first.
func (s *serviceImpl) WatchCompleted(ctx context.Context) <-chan []dto.TodoResponse {
	return s.watch(ctx, model.ViewCompleted)
}

// Update replaces the editable fields of an item and moves its reminder. It never spawns
// a successor.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get todo: %w", storeError(err))
	}

	req.ApplyTo(&item, s.clock.Now())

	if err = s.repo.Update(ctx, item); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", storeError(err))
	}

	s.invalidate(ctx, id)
	s.scheduler.Cancel(ctx, id)

	if !item.IsCompleted {
		s.schedule(ctx, item)
	}

	return nil
}

// ToggleCompletion flips the completion flag. Completing a DAILY or WEEKLY item inserts
// its next occurrence; reopening an item re-arms its reminder.
func (s *serviceImpl) ToggleCompletion(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleCompletion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get todo: %w", storeError(err))
	}

	now := s.clock.Now()

	item.IsCompleted = !item.IsCompleted
	item.Touch(now)

	if err = s.repo.SetCompletion(ctx, id, item.IsCompleted, item.LastModified); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle todo completion")

		return fmt.Errorf("failed to toggle todo completion: %w", storeError(err))
	}

	s.invalidate(ctx, id)

	if !item.IsCompleted {
		s.schedule(ctx, item)

		return nil
	}

	s.scheduler.Cancel(ctx, id)

	successor, ok := item.Successor(now)
	if !ok {
		return nil
	}

	successor.ID, err = s.repo.Insert(ctx, successor)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to create next occurrence")

		return fmt.Errorf("failed to create next occurrence: %w", storeError(err))
	}

	log.Info().
		Int64("id", id).
		Int64("nextID", successor.ID).
		Str("repeatType", string(successor.RepeatType)).
		Time("dueDate", successor.DueDate).
		Msg("recurring todo rolled over")

	s.schedule(ctx, successor)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get todo: %w", storeError(err))
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", storeError(err))
	}

	s.invalidate(ctx, id)
	s.scheduler.Cancel(ctx, id)

	return nil
}

// DueBy lists incomplete items due at or before threshold.
func (s *serviceImpl) DueBy(ctx context.Context, threshold time.Time) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DueBy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.ListDueBy(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list due todos: %w", storeError(err))
	}

	return toResponses(items), nil
}

// schedule arms the reminder for item. Failures are logged only; the store change that
// triggered it stands.
func (s *serviceImpl) schedule(ctx context.Context, item model.TodoItem) {
	if err := s.scheduler.Schedule(ctx, item); err != nil {
		log.Error().Err(err).Int64("id", item.ID).Msg("failed to schedule reminder")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to invalidate todo cache")
	}
}
