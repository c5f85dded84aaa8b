package dto

import (
	"fmt"
	"strings"

	"ourstory/shared/constant"
)

// Sort is an ORDER BY clause. Field must be a trusted column name, it is not bound as a parameter.
type Sort struct {
	Field string
	Dir   string
}

func Ascending(field string) Sort {
	return Sort{Field: field, Dir: constant.SortDirAsc}
}

// Clause renders the ORDER BY clause; tieBreaker is appended so rows with equal keys keep a stable order.
func (s Sort) Clause(tieBreaker string) string {
	if s.Field == "" {
		return ""
	}

	dir := strings.ToUpper(s.Dir)
	if dir != constant.SortDirAsc && dir != constant.SortDirDesc {
		dir = constant.SortDirAsc
	}

	if tieBreaker == "" || tieBreaker == s.Field {
		return fmt.Sprintf("ORDER BY %s %s", s.Field, dir)
	}

	return fmt.Sprintf("ORDER BY %s %s, %s %s", s.Field, dir, tieBreaker, dir)
}
