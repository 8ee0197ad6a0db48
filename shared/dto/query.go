package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Order struct {
	Field string
	Dir   string
	Table string
}

// QueryParams carries ordering and an optional row limit for list queries.
type QueryParams struct {
	Limit  int
	Orders []Order
}

func (q *QueryParams) OrderClause() string {
	parts := make([]string, 0, len(q.Orders))

	for _, order := range q.Orders {
		if order.Field == "" {
			continue
		}

		column := order.Field
		if order.Table != "" {
			column = fmt.Sprintf("%s.%s", order.Table, order.Field)
		}

		dir := strings.ToUpper(order.Dir)
		if dir != SortDirDesc {
			dir = SortDirAsc
		}

		parts = append(parts, column+" "+dir)
	}

	if len(parts) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}
