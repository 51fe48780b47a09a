package repositories

import (
	"context"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// SessionRepository stores interview sessions. Lookups of unknown ids return
// gorm.ErrRecordNotFound. Updates are last-write-wins.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, update models.SessionUpdate) error

	// List returns sessions newest first unless filters say otherwise, with
	// the total count before pagination.
	List(ctx context.Context, filters SessionFilters) ([]*models.Session, int64, error)
}
