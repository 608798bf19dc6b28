//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"bulk-cleanup/internal/domain/record"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertUser stores u with first/last name metadata and returns its new ID.
func InsertUser(t *testing.T, db Conn, u record.User) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO users (login, email, roles) VALUES ($1, $2, $3) RETURNING id",
		u.Login, u.Email, u.Roles).Scan(&id)
	require.NoError(t, err)

	for key, value := range map[string]string{"first_name": u.FirstName, "last_name": u.LastName} {
		_, err := db.Exec(ctx,
			"INSERT INTO user_meta (user_id, meta_key, meta_value) VALUES ($1, $2, $3)", id, key, value)
		require.NoError(t, err)
	}
	return id
}

func InsertOrder(t *testing.T, db Conn, status string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO orders (status, total) VALUES ($1, 10) RETURNING id", status).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO order_meta (order_id, meta_key, meta_value) VALUES ($1, 'note', 'fixture')", id)
	require.NoError(t, err)
	return id
}

func InsertCoupon(t *testing.T, db Conn, code, status string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO coupons (code, status, amount) VALUES ($1, $2, 5) RETURNING id", code, status).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO coupon_meta (coupon_id, meta_key, meta_value) VALUES ($1, 'note', 'fixture')", id)
	require.NoError(t, err)
	return id
}

// CountRows counts rows in table; table must be a trusted identifier.
func CountRows(t *testing.T, db Conn, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

// Children first so the truncate never trips a foreign key.
var cleanupTables = []string{"user_meta", "users", "order_meta", "orders", "coupon_meta", "coupons"}

// ResetDB empties every cleanup table and restarts ID sequences so fixture IDs are predictable.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sql := "TRUNCATE " + strings.Join(cleanupTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("reset cleanup tables: %w", err)
	}
	return nil
}
