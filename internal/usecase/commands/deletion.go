package commands

import (
	"context"
	"fmt"
	"log/slog"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/pkg/clock"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

// Deletion outcomes reported to metrics.
const (
	OutcomeDeleted  = "deleted"
	OutcomeNotFound = "not_found"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

const msgNothingLeft = "No users, orders, or coupons left to delete."

type DeletionCommands interface {
	RunBatch(ctx context.Context, batchSize int) (*DeletionResult, error)
}

type deletionCommandsImpl struct {
	pending  shared.PendingIDStore
	states   shared.ScanStateStore
	users    shared.UserSource
	orders   shared.OrderSource
	coupons  shared.CouponSource
	metrics  shared.CleanupMetrics
	throttle shared.Throttle
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDeletionCommands(
	pending shared.PendingIDStore,
	states shared.ScanStateStore,
	users shared.UserSource,
	orders shared.OrderSource,
	coupons shared.CouponSource,
	metrics shared.CleanupMetrics,
	throttle shared.Throttle,
	clk clock.Clock,
	logger *slog.Logger,
) DeletionCommands {
	return &deletionCommandsImpl{
		pending:  pending,
		states:   states,
		users:    users,
		orders:   orders,
		coupons:  coupons,
		metrics:  metrics,
		throttle: throttle,
		clock:    clk,
		logger:   logger,
	}
}

// target is the per-kind view the batch loop needs: a fresh lookup that
// returns a log label and whether the record is protected, and the delete.
type target struct {
	lookup func(ctx context.Context, id int64) (label string, protected bool, err error)
	remove func(ctx context.Context, id int64) (bool, error)
}

func (uc *deletionCommandsImpl) targetFor(kind record.Kind) target {
	switch kind {
	case record.KindUser:
		return target{
			lookup: func(ctx context.Context, id int64) (string, bool, error) {
				u, err := uc.users.FindByID(ctx, id)
				if err != nil {
					return "", false, err
				}
				return u.Login, u.IsAdministrator(), nil
			},
			remove: uc.users.Delete,
		}
	case record.KindOrder:
		return target{
			lookup: func(ctx context.Context, id int64) (string, bool, error) {
				o, err := uc.orders.FindByID(ctx, id)
				if err != nil {
					return "", false, err
				}
				return o.Status, false, nil
			},
			remove: uc.orders.Delete,
		}
	default:
		return target{
			lookup: func(ctx context.Context, id int64) (string, bool, error) {
				c, err := uc.coupons.FindByID(ctx, id)
				if err != nil {
					return "", false, err
				}
				return c.Code, false, nil
			},
			remove: uc.coupons.Delete,
		}
	}
}

func (uc *deletionCommandsImpl) RunBatch(ctx context.Context, batchSize int) (*DeletionResult, error) {
	size, err := criteria.ParseBatchSize(batchSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	started := uc.clock.Now()
	defer func() {
		uc.metrics.ObserveBatchDuration("delete", clock.Since(uc.clock, started))
	}()

	kind, counts, err := uc.selectKind(ctx)
	if err != nil {
		return nil, err
	}
	// An empty store leaves any scan state alone; a scan may still be running.
	if kind == "" {
		return &DeletionResult{Log: []string{msgNothingLeft}, Complete: true}, nil
	}

	ids, err := uc.pending.Peek(ctx, kind, size.Int())
	if err != nil {
		return nil, errs.Wrapf(err, "peek pending %s", kind)
	}

	t := uc.targetFor(kind)
	result := &DeletionResult{Kind: kind, Log: make([]string, 0, len(ids))}
	processed := make([]int64, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if err := uc.throttle.Wait(ctx); err != nil {
			break
		}
		line, outcome := uc.deleteOne(ctx, t, kind, id)
		processed = append(processed, id)
		result.Log = append(result.Log, line)
		uc.metrics.ObserveDeletion(kind, outcome)
		if outcome == OutcomeDeleted {
			result.Deleted++
		}
	}

	if len(processed) < len(ids) {
		uc.logger.Warn("deletion batch cut short by deadline",
			"kind", kind.String(),
			"processed", len(processed),
			"requested", len(ids))
	}

	// Processed IDs leave the store even when the request deadline has passed.
	left, err := uc.pending.Remove(context.WithoutCancel(ctx), kind, processed)
	if err != nil {
		return nil, errs.Wrapf(err, "remove processed %s", kind)
	}

	result.Remaining = left
	for _, k := range record.Kinds {
		if k != kind {
			result.Remaining += counts[k]
		}
	}

	if result.Remaining == 0 {
		if err := uc.finish(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}
		result.Complete = true
	}

	uc.logger.Info("deletion batch finished",
		"kind", kind.String(),
		"batch_size", size.Int(),
		"deleted", result.Deleted,
		"remaining", result.Remaining,
		"complete", result.Complete)

	return result, nil
}

// selectKind returns the first kind with pending IDs in priority order, or ""
// when nothing is left, together with the count of every kind.
func (uc *deletionCommandsImpl) selectKind(ctx context.Context) (record.Kind, map[record.Kind]int, error) {
	counts := make(map[record.Kind]int, len(record.Kinds))
	var selected record.Kind
	for _, kind := range record.Kinds {
		n, err := uc.pending.Count(ctx, kind)
		if err != nil {
			return "", nil, errs.Wrapf(err, "count pending %s", kind)
		}
		counts[kind] = n
		if selected == "" && n > 0 {
			selected = kind
		}
	}
	return selected, counts, nil
}

// deleteOne never returns an error; every failure becomes a log line.
func (uc *deletionCommandsImpl) deleteOne(ctx context.Context, t target, kind record.Kind, id int64) (line string, outcome string) {
	noun := kind.Singular()
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("panic while deleting record", "kind", kind.String(), "id", id, "panic", r)
			line = fmt.Sprintf("Error deleting %s ID %d: %v", noun, id, r)
			outcome = OutcomeFailed
		}
	}()

	label, protected, err := t.lookup(ctx, id)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return fmt.Sprintf("%s ID %d not found (already deleted?).", capitalize(noun), id), OutcomeNotFound
		}
		uc.logger.Error("lookup before delete failed", "kind", kind.String(), "id", id, "error", err)
		return fmt.Sprintf("Error deleting %s ID %d: %v", noun, id, err), OutcomeFailed
	}
	if protected {
		uc.logger.Warn("administrator skipped at deletion time", "id", id)
		return fmt.Sprintf("SAFETY: Skipped admin %s ID %d.", noun, id), OutcomeSkipped
	}

	ok, err := t.remove(ctx, id)
	switch {
	case err != nil:
		uc.logger.Error("delete failed", "kind", kind.String(), "id", id, "error", err)
		return fmt.Sprintf("Error deleting %s ID %d: %v", noun, id, err), OutcomeFailed
	case !ok:
		return fmt.Sprintf("Failed to delete %s ID %d (%s).", noun, id, label), OutcomeFailed
	default:
		return fmt.Sprintf("Deleted %s ID %d (%s).", noun, id, label), OutcomeDeleted
	}
}

func (uc *deletionCommandsImpl) finish(ctx context.Context) error {
	if err := uc.states.Delete(ctx); err != nil {
		return errs.Wrap(err, "clear scan state")
	}
	if err := uc.pending.Clear(ctx); err != nil {
		return errs.Wrap(err, "clear pending ids")
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
