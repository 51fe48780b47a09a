package repositories

import (
	"time"
)

// ===== SHARED FILTER STRUCTS =====

type SessionFilters struct {
	Name      string     `json:"name"` // case-insensitive substring match
	DateFrom  *time.Time `json:"date_from"`
	DateTo    *time.Time `json:"date_to"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	SortBy    string     `json:"sort_by"`    // "start_time", "name", "updated_at"
	SortOrder string     `json:"sort_order"` // "asc", "desc"
}
