package dto_test

import (
	"dueday/shared/constant"
	"dueday/shared/dto"
	"dueday/shared/model"
	"dueday/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFrom(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	lastModified := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := dto.MetadataFrom(model.Metadata{CreatedAt: createdAt, LastModified: lastModified})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(lastModified, constant.DateFormat), metadata.LastModified)

	assert.Equal(t, dto.Metadata{}, dto.MetadataFrom(model.Metadata{}))
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "is_completed", Value: false, Operator: dto.FilterOperatorEq, Table: "todo_items"},
			wantWhere: "todo_items.is_completed = :is_completed",
			wantArgs:  map[string]any{"is_completed": false},
		},
		{
			name:      "less_eq with arg name",
			filter:    dto.Filter{ArgName: "threshold", Field: "due_date", Value: 10, Operator: dto.FilterOperatorLessEq},
			wantWhere: "due_date <= :threshold",
			wantArgs:  map[string]any{"threshold": 10},
		},
		{
			name:      "greater",
			filter:    dto.Filter{Field: "id", Value: 3, Operator: dto.FilterOperatorGreater},
			wantWhere: "id > :id",
			wantArgs:  map[string]any{"id": 3},
		},
		{
			name:      "not_eq",
			filter:    dto.Filter{Field: "repeat_type", Value: "ONCE", Operator: dto.FilterOperatorNotEq},
			wantWhere: "repeat_type != :repeat_type",
			wantArgs:  map[string]any{"repeat_type": "ONCE"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "id", Value: []int64{1, 2}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": int64(1), "id_1": int64(2)},
		},
		{
			name:      "in with scalar is ignored",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_completed", Value: false, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "due_date", Value: 1, Operator: dto.FilterOperatorLessEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "repeat_type", Value: "DAILY", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "weekly", Field: "repeat_type", Value: "WEEKLY", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(is_completed = :is_completed AND due_date <= :due_date AND (repeat_type = :repeat_type OR repeat_type = :weekly))", where)
	assert.Equal(t, map[string]any{
		"is_completed": false,
		"due_date":     1,
		"repeat_type":  "DAILY",
		"weekly":       "WEEKLY",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_OrderClause(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "no orders", params: dto.QueryParams{}, want: ""},
		{
			name:   "single ascending",
			params: dto.QueryParams{Orders: []dto.Order{{Field: "due_date", Dir: dto.SortDirAsc}}},
			want:   "ORDER BY due_date ASC",
		},
		{
			name: "descending with tie breaker",
			params: dto.QueryParams{Orders: []dto.Order{
				{Field: "due_date", Dir: "desc", Table: "todo_items"},
				{Field: "id"},
			}},
			want: "ORDER BY todo_items.due_date DESC, id ASC",
		},
		{
			name:   "invalid direction falls back to ascending",
			params: dto.QueryParams{Orders: []dto.Order{{Field: "id", Dir: "sideways"}, {Field: ""}}},
			want:   "ORDER BY id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.OrderClause())
		})
	}
}
