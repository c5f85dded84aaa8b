package shared

import (
	"reflect"
	"strconv"
	"strings"

	"ourstory/shared/dto"
	"ourstory/shared/failure"
)

// ToColumns converts the db-tagged fields of a struct into a column map. Zero values are kept,
// so the result is a full overwrite rather than a patch.
func ToColumns(data any) map[string]any {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	typ := val.Type()
	columns := make(map[string]any, val.NumField())

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		columns[fieldName] = val.Field(index).Interface()
	}

	return columns
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins non-empty parts with ':'.
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, ":")
}

// ParseID reads a positive integer path id. Anything else is a bad request.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id: " + raw) //nolint:wrapcheck
	}

	return id, nil
}
