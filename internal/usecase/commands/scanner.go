package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/pkg/clock"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrScanStateLost = errs.New("scan state lost, please restart")

const DefaultScanPageSize = 1000

type ScanCommands interface {
	StartScan(ctx context.Context) (*StartScanResult, error)
	ScanBatch(ctx context.Context) (*ScanBatchResult, error)
	// Reset abandons any scan or pending deletion.
	Reset(ctx context.Context) error
}

type scanCommandsImpl struct {
	criteria shared.CriteriaStore
	states   shared.ScanStateStore
	pending  shared.PendingIDStore
	users    shared.UserSource
	orders   shared.OrderSource
	coupons  shared.CouponSource
	metrics  shared.CleanupMetrics
	clock    clock.Clock
	logger   *slog.Logger
	pageSize int
}

type ScanDeps struct {
	Criteria shared.CriteriaStore
	States   shared.ScanStateStore
	Pending  shared.PendingIDStore
	Users    shared.UserSource
	Orders   shared.OrderSource
	Coupons  shared.CouponSource
	Metrics  shared.CleanupMetrics
	Clock    clock.Clock
	Logger   *slog.Logger
	PageSize int
}

func NewScanCommands(deps ScanDeps) ScanCommands {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = DefaultScanPageSize
	}
	return &scanCommandsImpl{
		criteria: deps.Criteria,
		states:   deps.States,
		pending:  deps.Pending,
		users:    deps.Users,
		orders:   deps.Orders,
		coupons:  deps.Coupons,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		logger:   deps.Logger,
		pageSize: pageSize,
	}
}

// NewScanDeps adapts the fx graph to ScanDeps.
func NewScanDeps(cfg config.Config, crit shared.CriteriaStore, states shared.ScanStateStore, pending shared.PendingIDStore,
	users shared.UserSource, orders shared.OrderSource, coupons shared.CouponSource,
	metrics shared.CleanupMetrics, clk clock.Clock, logger *slog.Logger) ScanDeps {
	return ScanDeps{
		Criteria: crit,
		States:   states,
		Pending:  pending,
		Users:    users,
		Orders:   orders,
		Coupons:  coupons,
		Metrics:  metrics,
		Clock:    clk,
		Logger:   logger,
		PageSize: cfg.Cleanup.ScanPageSize,
	}
}

func (uc *scanCommandsImpl) StartScan(ctx context.Context) (*StartScanResult, error) {
	c, err := uc.criteria.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load criteria")
	}

	if err := uc.Reset(ctx); err != nil {
		return nil, err
	}

	state, err := scan.NewState(uuid.New(), c, uc.pageSize, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.states.Save(ctx, state); err != nil {
		return nil, errs.Wrap(err, "save initial scan state")
	}

	uc.logger.Info("cleanup scan started",
		"run_id", state.RunID.String(),
		"batch_size", c.BatchSize.Int(),
		"page_size", uc.pageSize,
		"orders_enabled", c.OrdersEnabled(),
		"coupons_enabled", c.CouponsEnabled())

	return &StartScanResult{
		RunID:     state.RunID,
		BatchSize: c.BatchSize,
		Message:   "Starting user scan...",
	}, nil
}

func (uc *scanCommandsImpl) Reset(ctx context.Context) error {
	if err := uc.states.Delete(ctx); err != nil {
		return errs.Wrap(err, "clear scan state")
	}
	if err := uc.pending.Clear(ctx); err != nil {
		return errs.Wrap(err, "clear pending ids")
	}
	return nil
}

func (uc *scanCommandsImpl) ScanBatch(ctx context.Context) (*ScanBatchResult, error) {
	state, err := uc.states.Load(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrStateNotFound) {
			return nil, ErrScanStateLost
		}
		return nil, errs.Wrap(err, "load scan state")
	}

	kind, ok := state.Phase.Kind()
	if !ok {
		return uc.complete(ctx, state)
	}

	var matched []int64
	var scanned int
	var exhausted bool
	switch kind {
	case record.KindUser:
		matched, scanned, exhausted, err = uc.scanUsers(ctx, state)
	case record.KindOrder:
		matched, scanned, exhausted, err = scanByStatus(ctx, state, kind, uc.orders.ListPage, func(o record.Order) int64 { return o.ID })
	case record.KindCoupon:
		matched, scanned, exhausted, err = scanByStatus(ctx, state, kind, uc.coupons.ListPage, func(c record.Coupon) int64 { return c.ID })
	}
	if err != nil {
		return nil, errs.Wrapf(err, "scan %s", kind)
	}

	// IDs are persisted before the cursor moves; a retried page re-appends the
	// same IDs, which the pending store deduplicates.
	if len(matched) > 0 {
		if err := uc.pending.Append(ctx, kind, matched); err != nil {
			return nil, errs.Wrap(err, "append pending ids")
		}
	}

	if err := state.Advance(scanned, len(matched), exhausted, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.states.Save(ctx, state); err != nil {
		return nil, errs.Wrap(err, "save scan state")
	}
	uc.metrics.ObserveScanPage(kind, scanned, len(matched))

	progress := state.Progress(kind)
	uc.logger.Debug("cleanup scan page",
		"run_id", state.RunID.String(),
		"kind", kind.String(),
		"offset", progress.Offset,
		"scanned", scanned,
		"matched", len(matched),
		"next_phase", state.Phase.String())

	return &ScanBatchResult{
		RunID:      state.RunID,
		Phase:      scan.PhaseOf(kind),
		Scanned:    progress.Scanned,
		Found:      progress.Matched,
		BatchFound: len(matched),
		BatchSize:  state.Criteria.BatchSize,
		Message:    fmt.Sprintf("Scanned %d %s, found %d to delete...", progress.Scanned, kind.String(), progress.Matched),
	}, nil
}

// pageOf reads one page plus a look-ahead row so exhaustion is known on the
// last full page.
func pageOf[T any](rows []T, pageSize int) ([]T, bool) {
	if len(rows) > pageSize {
		return rows[:pageSize], false
	}
	return rows, true
}

func (uc *scanCommandsImpl) scanUsers(ctx context.Context, state *scan.State) ([]int64, int, bool, error) {
	rows, err := uc.users.ListPage(ctx, state.Users.Offset, state.PageSize+1)
	if err != nil {
		return nil, 0, false, err
	}
	users, exhausted := pageOf(rows, state.PageSize)

	var matched []int64
	for _, u := range users {
		// The source already filters administrators; checked again per record.
		if u.IsAdministrator() {
			continue
		}
		reasons := state.Criteria.MatchedBy(u)
		if len(reasons) == 0 {
			continue
		}
		matched = append(matched, u.ID)
		uc.logger.Debug("user matched cleanup criteria",
			"run_id", state.RunID.String(),
			"user_id", u.ID,
			"reasons", reasons)
	}
	return matched, len(users), exhausted, nil
}

// Status membership is the whole predicate for orders and coupons.
func scanByStatus[T any](ctx context.Context, state *scan.State, kind record.Kind,
	list func(ctx context.Context, statuses []string, offset, limit int) ([]T, error), idOf func(T) int64) ([]int64, int, bool, error) {
	progress := state.Progress(kind)
	rows, err := list(ctx, state.Criteria.StatusesFor(kind), progress.Offset, state.PageSize+1)
	if err != nil {
		return nil, 0, false, err
	}
	page, exhausted := pageOf(rows, state.PageSize)

	matched := make([]int64, 0, len(page))
	for _, r := range page {
		matched = append(matched, idOf(r))
	}
	return matched, len(page), exhausted, nil
}

func (uc *scanCommandsImpl) complete(ctx context.Context, state *scan.State) (*ScanBatchResult, error) {
	counts := make(map[record.Kind]int, len(record.Kinds))
	total := 0
	for _, kind := range record.Kinds {
		n, err := uc.pending.Count(ctx, kind)
		if err != nil {
			return nil, errs.Wrapf(err, "count pending %s", kind)
		}
		counts[kind] = n
		total += n
	}

	if err := uc.states.Delete(ctx); err != nil {
		return nil, errs.Wrap(err, "delete scan state")
	}

	uc.logger.Info("cleanup scan complete",
		"run_id", state.RunID.String(),
		"users", counts[record.KindUser],
		"orders", counts[record.KindOrder],
		"coupons", counts[record.KindCoupon],
		"elapsed", clock.Since(uc.clock, state.StartedAt).String())

	return &ScanBatchResult{
		Complete:  true,
		RunID:     state.RunID,
		Phase:     scan.PhaseDone,
		Total:     total,
		Counts:    counts,
		BatchSize: state.Criteria.BatchSize,
		Message:   summaryMessage(counts),
	}, nil
}

func summaryMessage(counts map[record.Kind]int) string {
	var parts []string
	for _, kind := range record.Kinds {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind.String()))
		}
	}
	if len(parts) == 0 {
		return "Scan complete. No users, orders, or coupons found matching criteria."
	}
	return "Scan complete. Found " + strings.Join(parts, ", ") + " to delete."
}
