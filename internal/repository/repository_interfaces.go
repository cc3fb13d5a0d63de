package repository

import (
	"context"
)

// MenuItemsRepositoryInterface defines the catalog storage operations.
type MenuItemsRepositoryInterface interface {
	List(ctx context.Context) ([]*MenuItemDocument, error)
	FindByItemID(ctx context.Context, itemID string) (*MenuItemDocument, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, docs []*MenuItemDocument) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ MenuItemsRepositoryInterface = (*MenuItemsRepository)(nil)
	_ MenuItemsRepositoryInterface = (*MenuItemsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface      = (*LogsRepository)(nil)
	_ LogsRepositoryInterface      = (*LogsRepositoryWithCircuitBreaker)(nil)
)
