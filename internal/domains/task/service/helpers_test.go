package service_test

import (
	gDto "ourstory/shared/dto"
)

func filterArgs(filter any) (string, map[string]any) {
	group, _ := filter.(gDto.FilterGroup)

	return group.GetWhereClause()
}
