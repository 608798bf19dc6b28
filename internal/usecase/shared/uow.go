package shared

import (
	"context"

	"bulk-cleanup/internal/infra/db"
)

// UnitOfWork scopes repository SQL.
type UnitOfWork interface {
	// Within runs fn in one transaction, retried on serialization failures,
	// deadlocks and lock timeouts. fn must be safe to run more than once.
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB runs read-only fn directly on the pool.
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
}
