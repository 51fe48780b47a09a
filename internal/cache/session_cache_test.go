package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories"
)

type countingRepo struct {
	sessions map[string]*models.Session
	gets     int
	updates  int
}

func newCountingRepo() *countingRepo {
	return &countingRepo{sessions: map[string]*models.Session{}}
}

func (r *countingRepo) Create(_ context.Context, s *models.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *countingRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	r.gets++
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *countingRepo) Update(_ context.Context, id string, update models.SessionUpdate) error {
	r.updates++
	s, ok := r.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if update.Answers != nil {
		s.Answers = datatypes.JSON(`[{"questionId":"consent","value":"yes"}]`)
	}
	return nil
}

func (r *countingRepo) List(context.Context, repositories.SessionFilters) ([]*models.Session, int64, error) {
	return nil, 0, nil
}

func setup(t *testing.T) (*miniredis.Miniredis, *countingRepo, *CachedSessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newCountingRepo()
	cached := NewCachedSessionRepository(repo, NewRedisCache(client, logger), time.Minute, logger)
	return mr, repo, cached
}

func newSession(id string) *models.Session {
	return &models.Session{
		ID:        id,
		Name:      "Ada",
		StartTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Questions: datatypes.JSON(`["consent"]`),
		Answers:   datatypes.JSON(`[]`),
		Summary:   datatypes.JSON(`{"status":"in_progress","currentQuestionId":"consent","result":null}`),
	}
}

func TestCachedSessionRepository_CreateWarmsCache(t *testing.T) {
	mr, repo, cached := setup(t)
	ctx := context.Background()

	require.NoError(t, cached.Create(ctx, newSession("s1")))
	assert.True(t, mr.Exists("interview:session:s1"))

	got, err := cached.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.JSONEq(t, `["consent"]`, string(got.Questions))
	assert.Equal(t, 0, repo.gets)
}

func TestCachedSessionRepository_ReadThrough(t *testing.T) {
	mr, repo, cached := setup(t)
	ctx := context.Background()
	repo.sessions["s1"] = newSession("s1")

	_, err := cached.GetByID(ctx, "s1")
	require.NoError(t, err)
	_, err = cached.GetByID(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gets)
	assert.True(t, mr.Exists("interview:session:s1"))
	assert.Equal(t, time.Minute, mr.TTL("interview:session:s1"))
}

func TestCachedSessionRepository_UpdateInvalidates(t *testing.T) {
	mr, repo, cached := setup(t)
	ctx := context.Background()
	require.NoError(t, cached.Create(ctx, newSession("s1")))

	require.NoError(t, cached.Update(ctx, "s1", models.SessionUpdate{Answers: []models.StoredAnswerEntry{}}))
	assert.False(t, mr.Exists("interview:session:s1"))

	got, err := cached.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Contains(t, string(got.Answers), "consent")
	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, repo.updates)
}

func TestCachedSessionRepository_NotFoundPassesThrough(t *testing.T) {
	_, _, cached := setup(t)

	_, err := cached.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCachedSessionRepository_CacheDownFallsBackToStore(t *testing.T) {
	mr, repo, cached := setup(t)
	ctx := context.Background()
	repo.sessions["s1"] = newSession("s1")
	mr.Close()

	got, err := cached.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.NoError(t, cached.Update(ctx, "s1", models.SessionUpdate{}))
}

func TestCachedSessionRepository_Flush(t *testing.T) {
	mr, _, cached := setup(t)
	ctx := context.Background()
	require.NoError(t, cached.Create(ctx, newSession("a")))
	require.NoError(t, cached.Create(ctx, newSession("b")))
	require.NoError(t, mr.Set("other", "x"))

	require.NoError(t, cached.Flush(ctx))
	assert.False(t, mr.Exists("interview:session:a"))
	assert.False(t, mr.Exists("interview:session:b"))
	assert.True(t, mr.Exists("other"))
}

func TestFlushSessions_WithoutRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, mr.Set("interview:session:old", `{"id":"old"}`))
	require.NoError(t, mr.Set("interview:other", "keep"))

	require.NoError(t, FlushSessions(context.Background(), NewRedisCache(client, logger)))
	assert.False(t, mr.Exists("interview:session:old"))
	assert.True(t, mr.Exists("interview:other"))
}
