//go:build unit

package statestore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/infra/statestore"
	"bulk-cleanup/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StateStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *kvstore.BadgerStore
}

func (s *StateStoreSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := kvstore.Open("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.store = store
}

func (s *StateStoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StateStoreSuite) TestPendingIDs_AppendIsOrderedAndUnique() {
	repo := statestore.NewPendingIDRepository(s.store, time.Hour)

	s.Require().NoError(repo.Append(s.ctx, record.KindUser, []int64{5, 1, 3}))
	// A retried scan page appends the same IDs again.
	s.Require().NoError(repo.Append(s.ctx, record.KindUser, []int64{3, 5, 7}))

	n, err := repo.Count(s.ctx, record.KindUser)
	s.Require().NoError(err)
	s.Equal(4, n)

	ids, err := repo.Peek(s.ctx, record.KindUser, 10)
	s.Require().NoError(err)
	s.Equal([]int64{1, 3, 5, 7}, ids)

	ids, err = repo.Peek(s.ctx, record.KindUser, 2)
	s.Require().NoError(err)
	s.Equal([]int64{1, 3}, ids)
}

func (s *StateStoreSuite) TestPendingIDs_KindsAreIndependent() {
	repo := statestore.NewPendingIDRepository(s.store, time.Hour)

	s.Require().NoError(repo.Append(s.ctx, record.KindOrder, []int64{10, 11}))

	users, err := repo.Count(s.ctx, record.KindUser)
	s.Require().NoError(err)
	s.Zero(users)

	coupons, err := repo.Peek(s.ctx, record.KindCoupon, 5)
	s.Require().NoError(err)
	s.Empty(coupons)

	orders, err := repo.Count(s.ctx, record.KindOrder)
	s.Require().NoError(err)
	s.Equal(2, orders)
}

func (s *StateStoreSuite) TestPendingIDs_RemoveDrainsAndDropsKey() {
	repo := statestore.NewPendingIDRepository(s.store, time.Hour)
	s.Require().NoError(repo.Append(s.ctx, record.KindCoupon, []int64{1, 2, 3}))

	left, err := repo.Remove(s.ctx, record.KindCoupon, []int64{1, 2})
	s.Require().NoError(err)
	s.Equal(1, left)

	left, err = repo.Remove(s.ctx, record.KindCoupon, []int64{3, 99})
	s.Require().NoError(err)
	s.Zero(left)

	_, err = s.store.Get(s.ctx, "cleanup:pending:coupons")
	s.ErrorIs(err, kvstore.ErrNotFound)
}

func (s *StateStoreSuite) TestPendingIDs_Clear() {
	repo := statestore.NewPendingIDRepository(s.store, time.Hour)
	for _, kind := range record.Kinds {
		s.Require().NoError(repo.Append(s.ctx, kind, []int64{1}))
	}

	s.Require().NoError(repo.Clear(s.ctx))

	for _, kind := range record.Kinds {
		n, err := repo.Count(s.ctx, kind)
		s.Require().NoError(err)
		s.Zero(n, kind.String())
	}
}

func (s *StateStoreSuite) TestPendingIDs_InvalidKind() {
	repo := statestore.NewPendingIDRepository(s.store, time.Hour)
	err := repo.Append(s.ctx, record.Kind("posts"), []int64{1})
	s.ErrorIs(err, record.ErrInvalidKind)
}

func (s *StateStoreSuite) TestScanState() {
	repo := statestore.NewScanStateRepository(s.store, time.Hour)

	_, err := repo.Load(s.ctx)
	s.ErrorIs(err, shared.ErrStateNotFound)

	c, err := criteria.NewCriteria(criteria.Input{
		DeleteNoName:         true,
		DeleteOrdersByStatus: true,
		OrderStatuses:        []string{"cancelled"},
		BatchSize:            250,
	})
	s.Require().NoError(err)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	state, err := scan.NewState(uuid.New(), c, 1000, now)
	s.Require().NoError(err)
	s.Require().NoError(state.Advance(1000, 12, true, now.Add(time.Second)))

	s.Require().NoError(repo.Save(s.ctx, state))

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(state, got, cmpopts.EquateEmpty()); diff != "" {
		s.Failf("scan state mismatch", "(-want +got):\n%s", diff)
	}
	s.Equal(scan.PhaseOrders, got.Phase)

	s.Require().NoError(repo.Delete(s.ctx))
	_, err = repo.Load(s.ctx)
	s.ErrorIs(err, shared.ErrStateNotFound)
}

func (s *StateStoreSuite) TestSettings() {
	seed := criteria.Criteria{DeleteNoName: true, BatchSize: 50}
	repo := statestore.NewSettingsRepository(s.store, seed)

	got, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(seed, got)

	saved := criteria.Criteria{
		DeleteUnlistedDomains: true,
		AllowedDomains:        []string{"corp.com"},
		BatchSize:             500,
	}
	s.Require().NoError(repo.Save(s.ctx, saved))

	got, err = repo.Load(s.ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(saved, got, cmpopts.EquateEmpty()); diff != "" {
		s.Failf("settings mismatch", "(-want +got):\n%s", diff)
	}
}

func TestStateStoreSuite(t *testing.T) {
	suite.Run(t, new(StateStoreSuite))
}

func TestParseSeed(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		c, err := statestore.ParseSeed([]byte(`
delete_no_name: true
delete_unlisted_domains: true
allowed_domains: ["Corp.com", "@partner.org"]
delete_coupons: true
coupon_statuses: [draft]
batch_size: 7
`))
		require.NoError(t, err)
		assert.True(t, c.DeleteNoName)
		assert.Equal(t, []string{"corp.com", "partner.org"}, c.AllowedDomains)
		assert.True(t, c.CouponsEnabled())
		assert.Equal(t, criteria.DefaultBatchSize, c.BatchSize)
	})

	t.Run("administrator role rejected", func(t *testing.T) {
		_, err := statestore.ParseSeed([]byte("delete_role: administrator\n"))
		assert.ErrorIs(t, err, criteria.ErrAdministratorRole)
	})

	t.Run("no file means defaults", func(t *testing.T) {
		c, err := statestore.LoadSeed("")
		require.NoError(t, err)
		assert.Equal(t, criteria.Default(), c)
	})
}
