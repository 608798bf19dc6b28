//go:build unit

package record_test

import (
	"testing"

	"bulk-cleanup/internal/domain/record"

	"github.com/stretchr/testify/assert"
)

func TestUser(t *testing.T) {
	u := record.User{Email: " Someone@Example.COM ", Roles: []string{"customer"}}
	assert.Equal(t, "example.com", u.EmailDomain())
	assert.False(t, u.IsAdministrator())
	assert.False(t, u.HasName())
	assert.False(t, u.HasRole(""))

	assert.Equal(t, "", record.User{Email: "no-at-sign"}.EmailDomain())
	assert.Equal(t, "", record.User{Email: "trailing@"}.EmailDomain())
	assert.True(t, record.User{Roles: []string{"editor", "administrator"}}.IsAdministrator())
}

func TestKind(t *testing.T) {
	for _, k := range record.Kinds {
		got, err := record.NewKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := record.NewKind("posts")
	assert.ErrorIs(t, err, record.ErrInvalidKind)
	assert.Equal(t, "coupon", record.KindCoupon.Singular())
}
