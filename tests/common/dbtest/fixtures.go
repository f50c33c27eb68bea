//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fleet-ledger/internal/domain/fleet"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertOwner(t *testing.T, db DBLike, id fleet.Identity, name string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO owners (owner_id, name) VALUES ($1, $2)", id.String(), name)
	require.NoError(t, err)
}

func InsertCar(t *testing.T, db DBLike, carID string, owner fleet.Identity, rate string, available bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (car_id, owner_id, available, hourly_rate) VALUES ($1, $2, $3, $4::numeric)",
		carID, owner.String(), available, rate)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// EventKinds lists the outbox in commit order.
func EventKinds(t *testing.T, db DBLike) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT kind FROM ledger_events ORDER BY seq")
	require.NoError(t, err)
	defer rows.Close()

	var kinds []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		kinds = append(kinds, k)
	}
	require.NoError(t, rows.Err())
	return kinds
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all ledger tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
