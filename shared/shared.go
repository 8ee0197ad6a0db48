package shared

import (
	"dueday/shared/dto"
)

// FilterEq matches rows whose table.field equals value.
func FilterEq(field string, value any, table string) dto.Filter {
	return dto.Filter{
		Field:    field,
		Value:    value,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	}
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{FilterEq(fieldID, id, table)},
	}
}
