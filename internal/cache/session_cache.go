package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories"
)

const sessionKeyPrefix = "interview:session:"

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// CachedSessionRepository serves session reads from the cache and drops the
// cached copy on every write. Cache failures are logged and never surfaced.
type CachedSessionRepository struct {
	repositories.SessionRepository
	cache  CacheService
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSessionRepository(repo repositories.SessionRepository, cache CacheService, ttl time.Duration, logger *slog.Logger) *CachedSessionRepository {
	return &CachedSessionRepository{
		SessionRepository: repo,
		cache:             cache,
		ttl:               ttl,
		logger:            logger,
	}
}

func (c *CachedSessionRepository) Create(ctx context.Context, session *models.Session) error {
	if err := c.SessionRepository.Create(ctx, session); err != nil {
		return err
	}
	c.store(ctx, session)
	return nil
}

func (c *CachedSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var cached models.Session
	err := c.cache.Get(ctx, sessionKey(id), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "Session cache read failed", "session_id", id, "error", err)
	}

	session, err := c.SessionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, session)
	return session, nil
}

func (c *CachedSessionRepository) Update(ctx context.Context, id string, update models.SessionUpdate) error {
	err := c.SessionRepository.Update(ctx, id, update)
	if delErr := c.cache.Delete(ctx, sessionKey(id)); delErr != nil {
		c.logger.WarnContext(ctx, "Session cache invalidation failed", "session_id", id, "error", delErr)
	}
	return err
}

func (c *CachedSessionRepository) store(ctx context.Context, session *models.Session) {
	if err := c.cache.Set(ctx, sessionKey(session.ID), session, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "Session cache write failed", "session_id", session.ID, "error", err)
	}
}

// Flush drops every cached session.
func (c *CachedSessionRepository) Flush(ctx context.Context) error {
	return FlushSessions(ctx, c.cache)
}

// FlushSessions drops every session blob from cache, leaving other keys alone.
// Run it after a schema change so readers never see rows in the old shape.
func FlushSessions(ctx context.Context, cache CacheService) error {
	return cache.DeletePattern(ctx, sessionKeyPrefix+"*")
}
