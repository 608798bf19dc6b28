//go:build unit

package criteria_test

import (
	"testing"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/domain/record"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCriteria(t *testing.T) {
	t.Run("normalizes domains, statuses and batch size", func(t *testing.T) {
		actual, err := criteria.NewCriteria(criteria.Input{
			DeleteNoName:          true,
			DeleteUnlistedDomains: true,
			AllowedDomains:        []string{" Corp.com , example.org", "", "@corp.com"},
			DeleteByRole:          " subscriber ",
			DeleteOrdersByStatus:  true,
			OrderStatuses:         []string{"wc-failed", " wc-failed ", ""},
			BatchSize:             42,
		})
		require.NoError(t, err)

		expected := criteria.Criteria{
			DeleteNoName:          true,
			DeleteUnlistedDomains: true,
			AllowedDomains:        []string{"corp.com", "example.org"},
			DeleteByRole:          "subscriber",
			DeleteOrdersByStatus:  true,
			OrderStatuses:         []string{"wc-failed"},
			BatchSize:             criteria.DefaultBatchSize,
		}
		if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Criteria mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects administrator role", func(t *testing.T) {
		for _, role := range []string{"administrator", " Administrator "} {
			_, err := criteria.NewCriteria(criteria.Input{DeleteByRole: role})
			assert.ErrorIs(t, err, criteria.ErrAdministratorRole)
		}
	})

	t.Run("phase enablement needs flag and statuses", func(t *testing.T) {
		tests := []struct {
			name    string
			in      criteria.Input
			orders  bool
			coupons bool
		}{
			{name: "both disabled", in: criteria.Input{}},
			{name: "flag without statuses", in: criteria.Input{DeleteOrdersByStatus: true, DeleteCouponsByStatus: true}},
			{name: "statuses without flag", in: criteria.Input{OrderStatuses: []string{"wc-failed"}, CouponStatuses: []string{"draft"}}},
			{
				name:    "both enabled",
				in:      criteria.Input{DeleteOrdersByStatus: true, OrderStatuses: []string{"wc-failed"}, DeleteCouponsByStatus: true, CouponStatuses: []string{"draft"}},
				orders:  true,
				coupons: true,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c, err := criteria.NewCriteria(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.orders, c.OrdersEnabled())
				assert.Equal(t, tt.coupons, c.CouponsEnabled())
				assert.True(t, c.Enabled(record.KindUser))
			})
		}
	})
}

func TestBatchSize(t *testing.T) {
	for _, n := range []int{50, 100, 250, 500, 1000} {
		assert.Equal(t, criteria.BatchSize(n), criteria.NewBatchSize(n))
		b, err := criteria.ParseBatchSize(n)
		require.NoError(t, err)
		assert.Equal(t, n, b.Int())
	}

	for _, n := range []int{-1, 0, 1, 99, 101, 5000} {
		assert.Equal(t, criteria.DefaultBatchSize, criteria.NewBatchSize(n))
	}

	for _, n := range []int{1, 2, 99} {
		b, err := criteria.ParseBatchSize(n)
		require.NoError(t, err)
		assert.Equal(t, n, b.Int())
	}

	for _, n := range []int{-1, 0, 1001} {
		_, err := criteria.ParseBatchSize(n)
		assert.ErrorIs(t, err, criteria.ErrInvalidBatchSize)
	}
}

func TestParseDomains(t *testing.T) {
	assert.Equal(t, []string{"a.com", "b.org"}, criteria.ParseDomains("A.com, ,b.org", "a.com"))
	assert.Empty(t, criteria.ParseDomains("", " , "))
	// Entries are normalised, never rejected.
	assert.Equal(t, []string{"example.com", "shop.example.com"}, criteria.ParseDomains(" @Example.COM ", "Shop.Example.com,example.com"))
}
