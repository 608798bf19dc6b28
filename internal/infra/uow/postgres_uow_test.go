//go:build unit

package uow

import (
	"testing"
	"time"

	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, true},
		{"lock timeout", &pgconn.PgError{Code: pgErrCodeLockNotAvailable}, true},
		{"lock timeout behind a wrap", errs.Wrap(&pgconn.PgError{Code: pgErrCodeLockNotAvailable}, "delete user"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", assert.AnError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	p := RetryPolicyFromConfig(config.DBConfig{TxMaxRetries: 3, TxBackoff: 100 * time.Millisecond, LockTimeout: time.Second})
	assert.Equal(t, 3, p.MaxRetries)
	assert.Equal(t, time.Second, p.LockTimeout)

	for attempt := range 3 {
		want := time.Duration(1<<attempt) * p.Backoff
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5)
	}

	assert.Zero(t, RetryPolicy{}.backoff(2))
}
