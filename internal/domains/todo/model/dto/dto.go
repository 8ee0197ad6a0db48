package dto

import (
	"strings"
	"time"

	"dueday/internal/domains/todo/model"
	"dueday/shared/constant"
	gDto "dueday/shared/dto"
	gModel "dueday/shared/model"
	"dueday/shared/timezone"
	"dueday/shared/validator"
)

type CreateTodoRequest struct {
	Title       string    `json:"title" validate:"notblank,max=255"`
	Description string    `json:"description" validate:"max=1000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	RepeatType  string    `json:"repeat_type" validate:"oneof=ONCE DAILY WEEKLY"`
}

// Normalize trims text fields. An empty repeat type means ONCE.
func (c *CreateTodoRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.RepeatType = normalizeRepeat(c.RepeatType)
}

func (c *CreateTodoRequest) Validate() error {
	c.Normalize()

	return validator.ValidateStruct(c) //nolint:wrapcheck
}

func (c *CreateTodoRequest) ToModel(now time.Time) model.TodoItem {
	return model.TodoItem{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     timezone.ToAppTime(c.DueDate),
		IsCompleted: false,
		RepeatType:  model.RepeatType(c.RepeatType),
		Metadata:    gModel.NewMetadata(now),
	}
}

type UpdateTodoRequest struct {
	Title       string    `json:"title" validate:"notblank,max=255"`
	Description string    `json:"description" validate:"max=1000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	RepeatType  string    `json:"repeat_type" validate:"oneof=ONCE DAILY WEEKLY"`
}

func (u *UpdateTodoRequest) Normalize() {
	u.Title = strings.TrimSpace(u.Title)
	u.Description = strings.TrimSpace(u.Description)
	u.RepeatType = normalizeRepeat(u.RepeatType)
}

func (u *UpdateTodoRequest) Validate() error {
	u.Normalize()

	return validator.ValidateStruct(u) //nolint:wrapcheck
}

// ApplyTo replaces the editable fields of item. Completion state and creation time are
// left untouched.
func (u *UpdateTodoRequest) ApplyTo(item *model.TodoItem, now time.Time) {
	item.Title = u.Title
	item.Description = u.Description
	item.DueDate = timezone.ToAppTime(u.DueDate)
	item.RepeatType = model.RepeatType(u.RepeatType)
	item.Touch(now)
}

func normalizeRepeat(repeat string) string {
	repeat = strings.ToUpper(strings.TrimSpace(repeat))
	if repeat == constant.Empty {
		return string(model.RepeatOnce)
	}

	return repeat
}

type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	IsCompleted bool   `json:"is_completed"`
	RepeatType  string `json:"repeat_type"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.TodoItem) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.DueDate = timezone.Format(model.DueDate, constant.DateFormat)
	r.IsCompleted = model.IsCompleted
	r.RepeatType = string(model.RepeatType)
	r.Metadata = gDto.MetadataFrom(model.Metadata)
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(models []model.TodoItem) {
	r.TotalData = len(models)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
