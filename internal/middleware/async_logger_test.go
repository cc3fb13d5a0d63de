package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

// recordingWriter is a LogWriter that keeps entries in memory.
type recordingWriter struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	batches int
	err     error
}

func (w *recordingWriter) CreateLog(_ context.Context, entry *model.LogEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.entries = append(w.entries, entry)
	return nil
}

func (w *recordingWriter) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.batches++
	w.entries = append(w.entries, entries...)
	return nil
}

func (w *recordingWriter) snapshot() []*model.LogEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*model.LogEntry(nil), w.entries...)
}

func (w *recordingWriter) waitFor(t *testing.T, n int) []*model.LogEntry {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(w.snapshot()) >= n
	}, 2*time.Second, 10*time.Millisecond)
	return w.snapshot()
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilWriter(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
}

func TestAsyncLogger_FlushesOnStop(t *testing.T) {
	w := &recordingWriter{}
	al := NewAsyncLogger(w, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     10,
		FlushInterval: time.Hour,
	})

	for i := 0; i < 25; i++ {
		assert.True(t, al.Log(&model.LogEntry{ActionType: model.ActionToggle}))
	}
	al.Stop()

	assert.Len(t, w.snapshot(), 25)
	stats := al.Stats()
	assert.Equal(t, int64(25), stats.Enqueued)
	assert.Equal(t, int64(25), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.GreaterOrEqual(t, w.batches, 2)
}

func TestAsyncLogger_FlushesPartialBatchOnInterval(t *testing.T) {
	w := &recordingWriter{}
	al := NewAsyncLogger(w, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.LogEntry{ActionType: model.ActionCommit})

	entries := w.waitFor(t, 1)
	assert.Equal(t, model.ActionCommit, entries[0].ActionType)
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	w := &recordingWriter{err: errors.New("mongo down")}
	al := NewAsyncLogger(w, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 5, FlushInterval: time.Hour})

	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(2), stats.Errors)
	assert.Zero(t, stats.Written)
}

func TestAsyncLogger_LogAfterStopIsDropped(t *testing.T) {
	al := NewAsyncLogger(&recordingWriter{}, DefaultAsyncLoggerConfig())
	al.Stop()
	al.Stop()

	assert.False(t, al.Log(&model.LogEntry{}))
	assert.Equal(t, int64(1), al.Stats().Dropped)
}

func TestAsyncLogger_DropsWhenBufferFull(t *testing.T) {
	block := make(chan struct{})
	w := &blockingWriter{release: block}
	al := NewAsyncLogger(w, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, BatchSize: 1, FlushInterval: time.Hour})

	// The worker takes the first entry and blocks writing it; the second fills the
	// buffer; the third has nowhere to go.
	require.True(t, al.Log(&model.LogEntry{}))
	require.Eventually(t, func() bool { return w.started() }, time.Second, 5*time.Millisecond)
	require.True(t, al.Log(&model.LogEntry{}))
	assert.False(t, al.Log(&model.LogEntry{}))

	close(block)
	al.Stop()
	assert.Equal(t, int64(1), al.Stats().Dropped)
}

type blockingWriter struct {
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func (w *blockingWriter) started() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls > 0
}

func (w *blockingWriter) CreateLog(context.Context, *model.LogEntry) error {
	w.mu.Lock()
	w.calls++
	w.mu.Unlock()
	<-w.release
	return nil
}

func (w *blockingWriter) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	return w.CreateLog(ctx, nil)
}

func TestGlobalAsyncLogger(t *testing.T) {
	w := &recordingWriter{}
	InitAsyncLogger(w, AsyncLoggerConfig{NumWorkers: 1, FlushInterval: 10 * time.Millisecond})
	require.NotNil(t, GetAsyncLogger())

	persist(w, &model.LogEntry{Message: "queued"})
	StopAsyncLogger()

	assert.Nil(t, GetAsyncLogger())
	entries := w.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "queued", entries[0].Message)
}

func TestPersist_WithoutAsyncLogger(t *testing.T) {
	StopAsyncLogger()
	w := &recordingWriter{}

	persist(w, &model.LogEntry{Message: "direct"})

	entries := w.waitFor(t, 1)
	assert.Equal(t, "direct", entries[0].Message)
}
