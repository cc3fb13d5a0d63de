//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/circuitbreaker"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))
	repo := NewLogsRepository(db)

	base := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)

	t.Run("create request log", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "POST /api/cart/commit",
			RequestID:  "req-commit",
			SessionID:  "sess-1",
			Method:     "POST",
			Path:       "/api/cart/commit",
			StatusCode: 201,
			Duration:   12,
			IP:         "127.0.0.1",
			UserAgent:  "kiosk/1.0",
			Timestamp:  base.Add(5 * time.Second),
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
	})

	t.Run("create audit trail", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "Session started", SessionID: "sess-1", ActionType: "session_start", Timestamp: base},
			{Level: "info", Message: "Ingredient toggled", SessionID: "sess-1", ActionType: "toggle_ingredient", Timestamp: base.Add(time.Second)},
			{Level: "info", Message: "Line committed", SessionID: "sess-1", ActionType: "commit", Timestamp: base.Add(2 * time.Second),
				Fields: map[string]interface{}{"item_id": "custom-001", "price": int64(9500)}},
			{Level: "warn", Message: "Commit rejected", SessionID: "sess-2", ActionType: "commit_rejected", Timestamp: base},
		}

		require.NoError(t, repo.CreateMany(ctx, entries))
		for _, e := range entries {
			assert.False(t, e.ID.IsZero())
		}
	})

	t.Run("query by request ID", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-commit"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 201, entries[0].StatusCode)
	})

	t.Run("audit trail excludes request logs", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{SessionID: "sess-1", AuditOnly: true, Oldest: true})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "session_start", entries[0].ActionType)
		assert.Equal(t, "toggle_ingredient", entries[1].ActionType)
		assert.Equal(t, "commit", entries[2].ActionType)
		assert.Equal(t, "custom-001", entries[2].Fields["item_id"])
	})

	t.Run("latest first with limit", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{SessionID: "sess-1", Limit: 2})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "req-commit", entries[0].RequestID)
		assert.Equal(t, "commit", entries[1].ActionType)
	})

	t.Run("skip pages through results", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{SessionID: "sess-1", Oldest: true, Skip: 3})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-commit", entries[0].RequestID)
	})

	t.Run("unknown session returns an empty slice", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{SessionID: "missing"})
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		count, err = repo.Count(ctx, LogQueryOptions{AuditOnly: true, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = repo.Count(ctx, LogQueryOptions{Level: "warn"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test-logs",
	})
	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	t.Run("writes pass through a closed breaker", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &LogEntryDocument{Level: "info", Message: "Session started", SessionID: "sess-cb", ActionType: "session_start"}))

		count, err := repo.Count(ctx, LogQueryOptions{SessionID: "sess-cb"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, "closed", cb.GetStats().State)
	})

	t.Run("open breaker drops writes and fails reads", func(t *testing.T) {
		_ = cb.Execute(ctx, func() error { return errors.New("forced failure") })
		require.Equal(t, "open", cb.GetStats().State)

		assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{SessionID: "sess-cb", ActionType: "commit"}}))

		_, err := repo.Query(ctx, LogQueryOptions{SessionID: "sess-cb"})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}
