//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/usecase/shared"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memCriteria struct {
	c criteria.Criteria
}

func (m *memCriteria) Load(context.Context) (criteria.Criteria, error) { return m.c, nil }

func (m *memCriteria) Save(_ context.Context, c criteria.Criteria) error {
	m.c = c
	return nil
}

type memStates struct {
	state *scan.State
	saves int
}

func (m *memStates) Load(context.Context) (*scan.State, error) {
	if m.state == nil {
		return nil, shared.ErrStateNotFound
	}
	cp := *m.state
	return &cp, nil
}

func (m *memStates) Save(_ context.Context, s *scan.State) error {
	cp := *s
	m.state = &cp
	m.saves++
	return nil
}

func (m *memStates) Delete(context.Context) error {
	m.state = nil
	return nil
}

type memPending struct {
	ids map[record.Kind][]int64
}

func newMemPending() *memPending {
	return &memPending{ids: map[record.Kind][]int64{}}
}

func (m *memPending) Append(_ context.Context, kind record.Kind, ids []int64) error {
	for _, id := range ids {
		if !slices.Contains(m.ids[kind], id) {
			m.ids[kind] = append(m.ids[kind], id)
		}
	}
	slices.Sort(m.ids[kind])
	return nil
}

func (m *memPending) Peek(_ context.Context, kind record.Kind, n int) ([]int64, error) {
	ids := m.ids[kind]
	if n > len(ids) {
		n = len(ids)
	}
	return slices.Clone(ids[:n]), nil
}

func (m *memPending) Remove(_ context.Context, kind record.Kind, ids []int64) (int, error) {
	m.ids[kind] = slices.DeleteFunc(m.ids[kind], func(id int64) bool { return slices.Contains(ids, id) })
	return len(m.ids[kind]), nil
}

func (m *memPending) Count(_ context.Context, kind record.Kind) (int, error) {
	return len(m.ids[kind]), nil
}

func (m *memPending) Clear(context.Context) error {
	m.ids = map[record.Kind][]int64{}
	return nil
}

// memUsers mimics the SQL source: ListPage filters administrators unless
// leakAdmins is set, and Delete refuses administrators.
type memUsers struct {
	rows       []record.User
	leakAdmins bool
	deleteErr  map[int64]error
	refuse     map[int64]bool
	panics     map[int64]bool
	listCalls  int
	deleted    []int64
}

func (m *memUsers) visible() []record.User {
	var out []record.User
	for _, u := range m.rows {
		if m.leakAdmins || !u.IsAdministrator() {
			out = append(out, u)
		}
	}
	return out
}

func (m *memUsers) ListPage(_ context.Context, offset, limit int) ([]record.User, error) {
	m.listCalls++
	return page(m.visible(), offset, limit), nil
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*record.User, error) {
	if m.panics[id] {
		panic("corrupt row")
	}
	for _, u := range m.rows {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, shared.ErrRecordNotFound
}

func (m *memUsers) Delete(_ context.Context, id int64) (bool, error) {
	if err := m.deleteErr[id]; err != nil {
		return false, err
	}
	if m.refuse[id] {
		return false, nil
	}
	for i, u := range m.rows {
		if u.ID == id && !u.IsAdministrator() {
			m.rows = slices.Delete(m.rows, i, i+1)
			m.deleted = append(m.deleted, id)
			return true, nil
		}
	}
	return false, nil
}

type memStatusSource[T any] struct {
	rows     []T
	idOf     func(T) int64
	statusOf func(T) string
	deleted  []int64
	onDelete func(id int64)
}

func newMemOrders(rows ...record.Order) *memStatusSource[record.Order] {
	return &memStatusSource[record.Order]{
		rows:     rows,
		idOf:     func(o record.Order) int64 { return o.ID },
		statusOf: func(o record.Order) string { return o.Status },
	}
}

func newMemCoupons(rows ...record.Coupon) *memStatusSource[record.Coupon] {
	return &memStatusSource[record.Coupon]{
		rows:     rows,
		idOf:     func(c record.Coupon) int64 { return c.ID },
		statusOf: func(c record.Coupon) string { return c.Status },
	}
}

func (m *memStatusSource[T]) ListPage(_ context.Context, statuses []string, offset, limit int) ([]T, error) {
	var matching []T
	for _, r := range m.rows {
		if slices.Contains(statuses, m.statusOf(r)) {
			matching = append(matching, r)
		}
	}
	return page(matching, offset, limit), nil
}

func (m *memStatusSource[T]) FindByID(_ context.Context, id int64) (*T, error) {
	for _, r := range m.rows {
		if m.idOf(r) == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, shared.ErrRecordNotFound
}

func (m *memStatusSource[T]) Delete(_ context.Context, id int64) (bool, error) {
	for i, r := range m.rows {
		if m.idOf(r) == id {
			m.rows = slices.Delete(m.rows, i, i+1)
			m.deleted = append(m.deleted, id)
			if m.onDelete != nil {
				m.onDelete(id)
			}
			return true, nil
		}
	}
	return false, nil
}

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := min(offset+limit, len(rows))
	return slices.Clone(rows[offset:end])
}

type recordingMetrics struct {
	outcomes map[string]int
	scanned  map[record.Kind]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{outcomes: map[string]int{}, scanned: map[record.Kind]int{}}
}

func (m *recordingMetrics) ObserveScanPage(kind record.Kind, scanned, _ int) {
	m.scanned[kind] += scanned
}

func (m *recordingMetrics) ObserveDeletion(kind record.Kind, outcome string) {
	m.outcomes[kind.String()+":"+outcome]++
}

func (m *recordingMetrics) ObserveBatchDuration(string, time.Duration) {}

type nopThrottle struct{}

func (nopThrottle) Wait(ctx context.Context) error { return ctx.Err() }

// cancelAfter cancels the context once n records have been let through.
type cancelAfter struct {
	n      int
	cancel context.CancelFunc
}

func (c *cancelAfter) Wait(ctx context.Context) error {
	if c.n == 0 {
		c.cancel()
		return context.Canceled
	}
	c.n--
	return ctx.Err()
}
