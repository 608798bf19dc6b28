package shared

import (
	"context"
	"time"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/pkg/errs"
)

var (
	ErrStateNotFound  = errs.New("scan state not found")
	ErrRecordNotFound = errs.New("record not found")
)

// CriteriaStore is the settings collaborator. Load returns criteria.Default()
// when nothing has been saved yet.
type CriteriaStore interface {
	Load(ctx context.Context) (criteria.Criteria, error)
	Save(ctx context.Context, c criteria.Criteria) error
}

// ScanStateStore holds the single in-progress scan. Load returns ErrStateNotFound
// when the state is absent or expired.
type ScanStateStore interface {
	Load(ctx context.Context) (*scan.State, error)
	Save(ctx context.Context, state *scan.State) error
	Delete(ctx context.Context) error
}

// PendingIDStore holds one ordered sequence of unique IDs per record kind.
type PendingIDStore interface {
	Append(ctx context.Context, kind record.Kind, ids []int64) error
	// Peek returns up to n IDs from the front without removing them.
	Peek(ctx context.Context, kind record.Kind, n int) ([]int64, error)
	// Remove drops ids from the sequence and returns how many are left.
	Remove(ctx context.Context, kind record.Kind, ids []int64) (int, error)
	Count(ctx context.Context, kind record.Kind) (int, error)
	Clear(ctx context.Context) error
}

// UserSource pages non-administrator users ordered by ID ascending.
type UserSource interface {
	ListPage(ctx context.Context, offset, limit int) ([]record.User, error)
	FindByID(ctx context.Context, id int64) (*record.User, error)
	// Delete removes the user and its metadata; false means nothing was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

type OrderSource interface {
	ListPage(ctx context.Context, statuses []string, offset, limit int) ([]record.Order, error)
	FindByID(ctx context.Context, id int64) (*record.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CouponSource interface {
	ListPage(ctx context.Context, statuses []string, offset, limit int) ([]record.Coupon, error)
	FindByID(ctx context.Context, id int64) (*record.Coupon, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CleanupMetrics interface {
	ObserveScanPage(kind record.Kind, scanned, matched int)
	ObserveDeletion(kind record.Kind, outcome string)
	ObserveBatchDuration(action string, d time.Duration)
}

// Throttle paces destructive calls; *rate.Limiter satisfies it.
type Throttle interface {
	Wait(ctx context.Context) error
}
