package queries

import (
	"context"
	"errors"

	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

type CleanupQueries interface {
	Status(ctx context.Context) (*StatusView, error)
}

type cleanupQueriesImpl struct {
	states  shared.ScanStateStore
	pending shared.PendingIDStore
}

func NewCleanupQueries(states shared.ScanStateStore, pending shared.PendingIDStore) CleanupQueries {
	return &cleanupQueriesImpl{
		states:  states,
		pending: pending,
	}
}

func (q *cleanupQueriesImpl) Status(ctx context.Context) (*StatusView, error) {
	view := &StatusView{Pending: make(map[string]int, len(record.Kinds))}

	state, err := q.states.Load(ctx)
	switch {
	case errors.Is(err, shared.ErrStateNotFound):
	case err != nil:
		return nil, errs.Wrap(err, "load scan state")
	default:
		view.Scanning = true
		view.Scan = toScanView(state)
	}

	for _, kind := range record.Kinds {
		n, err := q.pending.Count(ctx, kind)
		if err != nil {
			return nil, errs.Wrap(err, "count pending "+kind.String())
		}
		view.Pending[kind.String()] = n
		view.Total += n
	}
	return view, nil
}

func toScanView(s *scan.State) *ScanView {
	progress := func(p scan.Progress) PhaseProgressView {
		return PhaseProgressView{Offset: p.Offset, Scanned: p.Scanned, Matched: p.Matched}
	}
	return &ScanView{
		RunID:     s.RunID,
		Phase:     s.Phase.String(),
		Users:     progress(s.Users),
		Orders:    progress(s.Orders),
		Coupons:   progress(s.Coupons),
		PageSize:  s.PageSize,
		BatchSize: s.Criteria.BatchSize.Int(),
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
