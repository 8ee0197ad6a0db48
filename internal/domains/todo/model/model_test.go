package model_test

import (
	"testing"
	"time"

	"dueday/internal/domains/todo/model"
	gModel "dueday/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatType_Next(t *testing.T) {
	due := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		repeat model.RepeatType
		want   time.Time
		wantOK bool
	}{
		{name: "once never recurs", repeat: model.RepeatOnce},
		{name: "daily", repeat: model.RepeatDaily, want: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), wantOK: true},
		{name: "weekly", repeat: model.RepeatWeekly, want: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), wantOK: true},
		{name: "unknown", repeat: model.RepeatType("MONTHLY")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.repeat.Next(due)

			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestRepeatType_NextKeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	due := time.Date(2024, 3, 30, 9, 0, 0, 0, loc)

	next, ok := model.RepeatDaily.Next(due)

	require.True(t, ok)
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 31, next.Day())
}

func TestRepeatType_Valid(t *testing.T) {
	assert.True(t, model.RepeatOnce.Valid())
	assert.True(t, model.RepeatDaily.Valid())
	assert.True(t, model.RepeatWeekly.Valid())
	assert.False(t, model.RepeatType("").Valid())
	assert.False(t, model.RepeatOnce.Recurring())
	assert.True(t, model.RepeatWeekly.Recurring())
}

func TestTodoItem_Successor(t *testing.T) {
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)

	item := model.TodoItem{
		ID:          42,
		Title:       "Pay rent",
		Description: "transfer",
		DueDate:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		IsCompleted: true,
		RepeatType:  model.RepeatWeekly,
		Metadata:    gModel.NewMetadata(created),
	}

	next, ok := item.Successor(now)

	require.True(t, ok)
	assert.Zero(t, next.ID)
	assert.False(t, next.IsCompleted)
	assert.Equal(t, "Pay rent", next.Title)
	assert.Equal(t, "transfer", next.Description)
	assert.Equal(t, model.RepeatWeekly, next.RepeatType)
	assert.True(t, next.DueDate.Equal(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)))
	assert.True(t, next.CreatedAt.Equal(now))
	assert.True(t, next.LastModified.Equal(now))

	item.RepeatType = model.RepeatOnce
	_, ok = item.Successor(now)
	assert.False(t, ok)
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "all", model.ViewAll.String())
	assert.Equal(t, "active", model.ViewActive.String())
	assert.Equal(t, "completed", model.ViewCompleted.String())
	assert.Equal(t, "view(9)", model.View(9).String())
}

func TestNotificationKey(t *testing.T) {
	assert.Equal(t, "todo_notification_7", model.NotificationKey(7))
}
