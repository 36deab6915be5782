package persistence

import (
	"strings"

	"github.com/cosmo/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page/page-size and ordering from the filter.
// orderColumns whitelists the sortable columns; defaultOrder is used when the
// filter does not name one.
func applyPagination(query *gorm.DB, filter shared.Filter, orderColumns map[string]bool, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" && orderColumns[filter.OrderBy] {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + orderDir)
	}
	return query.Order(defaultOrder)
}
