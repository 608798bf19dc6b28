//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/usecase/queries"
	"bulk-cleanup/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStates struct {
	state *scan.State
	err   error
}

func (s stubStates) Load(context.Context) (*scan.State, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.state == nil {
		return nil, shared.ErrStateNotFound
	}
	return s.state, nil
}

func (stubStates) Save(context.Context, *scan.State) error { return nil }
func (stubStates) Delete(context.Context) error            { return nil }

type stubPending map[record.Kind]int

func (stubPending) Append(context.Context, record.Kind, []int64) error { return nil }
func (stubPending) Peek(context.Context, record.Kind, int) ([]int64, error) {
	return nil, nil
}
func (stubPending) Remove(context.Context, record.Kind, []int64) (int, error) { return 0, nil }
func (p stubPending) Count(_ context.Context, kind record.Kind) (int, error) {
	return p[kind], nil
}
func (stubPending) Clear(context.Context) error { return nil }

type stubCriteria struct{ c criteria.Criteria }

func (s stubCriteria) Load(context.Context) (criteria.Criteria, error) { return s.c, nil }
func (stubCriteria) Save(context.Context, criteria.Criteria) error    { return nil }

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("idle with pending deletions", func(t *testing.T) {
		q := queries.NewCleanupQueries(stubStates{}, stubPending{record.KindOrder: 4, record.KindCoupon: 1})

		got, err := q.Status(ctx)
		require.NoError(t, err)

		want := &queries.StatusView{
			Pending: map[string]int{"users": 0, "orders": 4, "coupons": 1},
			Total:   5,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scan in progress", func(t *testing.T) {
		now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		state, err := scan.NewState(uuid.New(), criteria.Criteria{BatchSize: 500}, 1000, now)
		require.NoError(t, err)
		require.NoError(t, state.Advance(1000, 40, false, now))

		q := queries.NewCleanupQueries(stubStates{state: state}, stubPending{record.KindUser: 40})

		got, err := q.Status(ctx)
		require.NoError(t, err)
		assert.True(t, got.Scanning)
		require.NotNil(t, got.Scan)
		assert.Equal(t, "users", got.Scan.Phase)
		assert.Equal(t, queries.PhaseProgressView{Offset: 1000, Scanned: 1000, Matched: 40}, got.Scan.Users)
		assert.Equal(t, 500, got.Scan.BatchSize)
		assert.Equal(t, 40, got.Total)
	})

	t.Run("store failure", func(t *testing.T) {
		q := queries.NewCleanupQueries(stubStates{err: assert.AnError}, stubPending{})
		_, err := q.Status(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetSettings(t *testing.T) {
	q := queries.NewSettingsQueries(stubCriteria{c: criteria.Default()})

	got, err := q.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100, got.BatchSize)
	assert.Equal(t, []int{50, 100, 250, 500, 1000}, got.AllowedBatchSizes)
	assert.NotNil(t, got.AllowedDomains)
	assert.Empty(t, got.AllowedDomains)
}
