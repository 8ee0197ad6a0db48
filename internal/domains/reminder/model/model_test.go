package model_test

import (
	"testing"
	"time"

	"dueday/internal/domains/reminder/model"
	todoModel "dueday/internal/domains/todo/model"

	"github.com/stretchr/testify/assert"
)

func TestNewNotification(t *testing.T) {
	due := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	now := due.Add(-30 * time.Minute)

	n := model.NewNotification(todoModel.TodoItem{ID: 9, Title: "Pay rent", DueDate: due}, "run-1", now)

	assert.Equal(t, int64(9), n.TodoID)
	assert.Equal(t, "todo_notifications", n.Channel)
	assert.Equal(t, "Todo reminder", n.Title)
	assert.Equal(t, "Pay rent is due soon", n.Body)
	assert.Equal(t, "run-1", n.RunID)
	assert.True(t, n.DueDate.Equal(due))
	assert.True(t, n.NotifiedAt.Equal(now))
}
