package model

import (
	"fmt"
	"time"

	todoModel "dueday/internal/domains/todo/model"
)

const (
	EntityName = "reminder"

	ChannelID    = "todo_notifications"
	ChannelName  = "Todo Notifications"
	Title        = "Todo reminder"
	bodyTemplate = "%s is due soon"
)

// Notification is one user-visible reminder. TodoID doubles as the notification id so a
// later notification for the same item replaces the earlier one.
type Notification struct {
	TodoID     int64     `json:"todo_id"`
	Channel    string    `json:"channel"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	DueDate    time.Time `json:"due_date"`
	RunID      string    `json:"run_id"`
	NotifiedAt time.Time `json:"notified_at"`
}

func NewNotification(item todoModel.TodoItem, runID string, now time.Time) Notification {
	return Notification{
		TodoID:     item.ID,
		Channel:    ChannelID,
		Title:      Title,
		Body:       fmt.Sprintf(bodyTemplate, item.Title),
		DueDate:    item.DueDate,
		RunID:      runID,
		NotifiedAt: now,
	}
}
