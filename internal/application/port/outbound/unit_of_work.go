package outbound

import "context"

// RepositoryProvider exposes the repositories bound to the active
// transaction inside a UnitOfWork callback.
type RepositoryProvider interface {
	Sites() SiteRepository
	IngestLog() IngestLogRepository
}

// UnitOfWork runs fn atomically; the provider it hands to fn is already
// hydrated with the open transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(provider RepositoryProvider) error) error
}
