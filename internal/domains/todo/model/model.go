package model

import (
	"fmt"
	"time"

	"dueday/shared/model"
)

const (
	TableName  = "todo_items"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldIsCompleted = "is_completed"
	FieldRepeatType  = "repeat_type"
)

type RepeatType string

const (
	RepeatOnce   RepeatType = "ONCE"
	RepeatDaily  RepeatType = "DAILY"
	RepeatWeekly RepeatType = "WEEKLY"
)

func (r RepeatType) Valid() bool {
	switch r {
	case RepeatOnce, RepeatDaily, RepeatWeekly:
		return true
	default:
		return false
	}
}

// Recurring reports whether completing an item of this type spawns a successor.
func (r RepeatType) Recurring() bool {
	return r == RepeatDaily || r == RepeatWeekly
}

// Next returns the due date of the successor occurrence. Offsets are calendar days in
// due's location, so wall clock time is kept across DST changes.
func (r RepeatType) Next(due time.Time) (time.Time, bool) {
	switch r {
	case RepeatDaily:
		return due.AddDate(0, 0, 1), true
	case RepeatWeekly:
		return due.AddDate(0, 0, 7), true
	default:
		return time.Time{}, false
	}
}

// View selects one of the three live lists.
type View int

const (
	ViewAll View = iota
	ViewActive
	ViewCompleted
)

func (v View) String() string {
	switch v {
	case ViewAll:
		return "all"
	case ViewActive:
		return "active"
	case ViewCompleted:
		return "completed"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

type TodoItem struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueDate     time.Time  `db:"due_date"`
	IsCompleted bool       `db:"is_completed"`
	RepeatType  RepeatType `db:"repeat_type"`
	model.Metadata
}

// Successor builds the next occurrence of a recurring item. The result is unsaved
// (ID 0) and incomplete.
func (t TodoItem) Successor(now time.Time) (TodoItem, bool) {
	due, ok := t.RepeatType.Next(t.DueDate)
	if !ok {
		return TodoItem{}, false
	}

	return TodoItem{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     due,
		RepeatType:  t.RepeatType,
		Metadata:    model.NewMetadata(now),
	}, true
}

// NotificationKey names the pending reminder of an item.
func NotificationKey(id int64) string {
	return fmt.Sprintf("todo_notification_%d", id)
}
