package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var sessionSortColumns = []string{"start_time", "name", "updated_at"}

type SessionPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (s SessionPostgreSQL) Create(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s SessionPostgreSQL) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s SessionPostgreSQL) Update(ctx context.Context, id string, update models.SessionUpdate) error {
	fields, err := updateFields(update)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s SessionPostgreSQL) List(ctx context.Context, filters repositories.SessionFilters) ([]*models.Session, int64, error) {
	var sessions []*models.Session
	var total int64

	query := s.db.WithContext(ctx).Model(&models.Session{})
	query = s.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = s.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset, sessionSortColumns...)
	if err := query.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (s SessionPostgreSQL) applyFilters(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	if name := strings.TrimSpace(filters.Name); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if filters.DateFrom != nil {
		query = query.Where("start_time >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("start_time <= ?", *filters.DateTo)
	}
	return query
}

// updateFields encodes the non-nil parts of update as JSON column values.
func updateFields(update models.SessionUpdate) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, 3)

	if update.Questions != nil {
		raw, err := json.Marshal(update.Questions)
		if err != nil {
			return nil, fmt.Errorf("encode questions: %w", err)
		}
		fields["questions"] = datatypes.JSON(raw)
	}
	if update.Answers != nil {
		raw, err := json.Marshal(update.Answers)
		if err != nil {
			return nil, fmt.Errorf("encode answers: %w", err)
		}
		fields["answers"] = datatypes.JSON(raw)
	}
	if update.Summary != nil {
		raw, err := json.Marshal(update.Summary)
		if err != nil {
			return nil, fmt.Errorf("encode summary: %w", err)
		}
		fields["summary"] = datatypes.JSON(raw)
	}

	return fields, nil
}
