package repository

import (
	"context"
	"errors"

	"github.com/guttosm/food-order-service/internal/circuitbreaker"
)

// MenuItemsRepositoryWithCircuitBreaker wraps MenuItemsRepository with circuit breaker protection.
type MenuItemsRepositoryWithCircuitBreaker struct {
	repo           MenuItemsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMenuItemsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMenuItemsRepositoryWithCircuitBreaker(repo MenuItemsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *MenuItemsRepositoryWithCircuitBreaker {
	return &MenuItemsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns the stored catalog. An open circuit surfaces as ErrCircuitOpen so the
// caller can fall back to the built-in menu.
func (r *MenuItemsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]*MenuItemDocument, error) {
	var result []*MenuItemDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// FindByItemID looks up one item with circuit breaker protection. A missing document is
// not a dependency failure and does not trip the breaker.
func (r *MenuItemsRepositoryWithCircuitBreaker) FindByItemID(ctx context.Context, itemID string) (*MenuItemDocument, error) {
	var result *MenuItemDocument
	var notFound bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByItemID(ctx, itemID)
		if errors.Is(cbErr, ErrMenuItemNotFound) {
			notFound = true
			return nil
		}
		return cbErr
	})
	if notFound {
		return nil, ErrMenuItemNotFound
	}
	return result, err
}

// Count returns the number of stored items with circuit breaker protection.
func (r *MenuItemsRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// Seed inserts missing catalog documents with circuit breaker protection.
func (r *MenuItemsRepositoryWithCircuitBreaker) Seed(ctx context.Context, docs []*MenuItemDocument) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Seed(ctx, docs)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MenuItemsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries. Batches are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
