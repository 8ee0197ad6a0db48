package shared_test

import (
	"dueday/shared"
	"dueday/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "id", "todo_items")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(todo_items.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(42)}, args)
	assert.Len(t, group.Filters, 1)
	assert.Equal(t, dto.FilterOperatorEq, group.Filters[0].(dto.Filter).Operator)
}

func TestFilterEq(t *testing.T) {
	filter := shared.FilterEq("is_completed", true, "todo_items")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "todo_items.is_completed = :is_completed", where)
	assert.Equal(t, map[string]any{"is_completed": true}, args)
}
