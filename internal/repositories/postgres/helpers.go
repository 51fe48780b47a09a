package postgres

import (
	"gorm.io/gorm"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// SharedHelpers holds query helpers reused by the postgres repositories.
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

// ApplyPaginationAndSort orders by sortBy when it is one of allowed, falling
// back to the first allowed column, and clamps the page size.
func (h *SharedHelpers) ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int, allowed ...string) *gorm.DB {
	column := ""
	for _, candidate := range allowed {
		if candidate == sortBy {
			column = candidate
			break
		}
	}
	if column == "" && len(allowed) > 0 {
		column = allowed[0]
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	if column != "" {
		query = query.Order(column + " " + direction)
	}

	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
