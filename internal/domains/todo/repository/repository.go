package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"dueday/infras/otel"
	"dueday/infras/postgres"
	"dueday/internal/domains/todo/model"
	"dueday/shared"
	"dueday/shared/constant"
	gDto "dueday/shared/dto"
	"dueday/shared/failure"
	"dueday/shared/livequery"
	gRepo "dueday/shared/repository"
	"dueday/shared/timezone"
)

// Todo persists todo items. Every mutation is a single statement and is announced to
// live queries once it has committed.
type Todo interface {
	GetByID(ctx context.Context, id int64) (model.TodoItem, error)
	List(ctx context.Context, view model.View) ([]model.TodoItem, error)
	Watch(ctx context.Context, view model.View) <-chan []model.TodoItem
	ListDueBy(ctx context.Context, threshold time.Time) ([]model.TodoItem, error)
	Insert(ctx context.Context, item model.TodoItem) (int64, error)
	Update(ctx context.Context, item model.TodoItem) error
	Delete(ctx context.Context, id int64) error
	SetCompletion(ctx context.Context, id int64, isCompleted bool, lastModified time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.TodoItem]
	hub  *livequery.Hub
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TodoItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		hub:        livequery.NewHub(model.TableName),
		otel:       otel,
	}
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func completedFilter(isCompleted bool) gDto.Filter {
	return shared.FilterEq(model.FieldIsCompleted, isCompleted, model.TableName)
}

// viewQuery returns ordering and filter for a view. Ties on due date fall back to id so
// the order is stable.
func viewQuery(view model.View) (gDto.QueryParams, gDto.FilterGroup) {
	dir := gDto.SortDirAsc
	filter := gDto.FilterGroup{}

	switch view {
	case model.ViewActive:
		filter.Filters = append(filter.Filters, completedFilter(false))
	case model.ViewCompleted:
		filter.Filters = append(filter.Filters, completedFilter(true))
		dir = gDto.SortDirDesc
	case model.ViewAll:
	}

	params := gDto.QueryParams{
		Orders: []gDto.Order{
			{Field: model.FieldDueDate, Dir: dir, Table: model.TableName},
			{Field: model.FieldID, Dir: gDto.SortDirAsc, Table: model.TableName},
		},
	}

	return params, filter
}

func toAppTime(items []model.TodoItem) []model.TodoItem {
	for i := range items {
		items[i] = itemToAppTime(items[i])
	}

	return items
}

func itemToAppTime(item model.TodoItem) model.TodoItem {
	item.DueDate = timezone.ToAppTime(item.DueDate)
	item.CreatedAt = timezone.ToAppTime(item.CreatedAt)
	item.LastModified = timezone.ToAppTime(item.LastModified)

	return item
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int64) (model.TodoItem, error) {
	item, err := r.Get(ctx, byID(id))
	if err != nil {
		return item, err //nolint:wrapcheck
	}

	if item.ID == 0 {
		return item, failure.NotFound(fmt.Sprintf("todo %d not found", id)) //nolint:wrapcheck
	}

	return itemToAppTime(item), nil
}

func (r *repositoryImpl) List(ctx context.Context, view model.View) ([]model.TodoItem, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.List")
	defer scope.End()

	scope.SetAttribute("view", view.String())

	params, filter := viewQuery(view)

	items, err := r.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return toAppTime(items), nil
}

// Watch streams the view's result set, re-queried after every mutation.
func (r *repositoryImpl) Watch(ctx context.Context, view model.View) <-chan []model.TodoItem {
	return livequery.Watch(ctx, r.hub, func(ctx context.Context) ([]model.TodoItem, error) {
		return r.List(ctx, view)
	})
}

func (r *repositoryImpl) ListDueBy(ctx context.Context, threshold time.Time) ([]model.TodoItem, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDueDate,
				Value:    threshold,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			completedFilter(false),
		},
	}

	params := gDto.QueryParams{
		Orders: []gDto.Order{
			{Field: model.FieldDueDate, Dir: gDto.SortDirAsc, Table: model.TableName},
			{Field: model.FieldID, Dir: gDto.SortDirAsc, Table: model.TableName},
		},
	}

	items, err := r.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return toAppTime(items), nil
}

// Insert lets the database assign an id when item.ID is 0 and upserts otherwise.
func (r *repositoryImpl) Insert(ctx context.Context, item model.TodoItem) (int64, error) {
	if item.ID == 0 {
		id, err := r.Repository.Insert(ctx, item)
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		r.hub.Publish()

		return id, nil
	}

	if err := r.Upsert(ctx, item); err != nil {
		return 0, err //nolint:wrapcheck
	}

	r.hub.Publish()

	return item.ID, nil
}

func (r *repositoryImpl) Update(ctx context.Context, item model.TodoItem) error {
	affected, err := r.Repository.Update(ctx, map[string]any{
		model.FieldTitle:           item.Title,
		model.FieldDescription:     item.Description,
		model.FieldDueDate:         item.DueDate,
		model.FieldIsCompleted:     item.IsCompleted,
		model.FieldRepeatType:      item.RepeatType,
		constant.FieldLastModified: item.LastModified,
	}, byID(item.ID))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("todo %d not found", item.ID)) //nolint:wrapcheck
	}

	r.hub.Publish()

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	affected, err := r.Repository.Delete(ctx, byID(id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected > 0 {
		r.hub.Publish()
	}

	return nil
}

func (r *repositoryImpl) SetCompletion(ctx context.Context, id int64, isCompleted bool, lastModified time.Time) error {
	affected, err := r.Repository.Update(ctx, map[string]any{
		model.FieldIsCompleted:     isCompleted,
		constant.FieldLastModified: lastModified,
	}, byID(id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("todo %d not found", id)) //nolint:wrapcheck
	}

	r.hub.Publish()

	return nil
}
