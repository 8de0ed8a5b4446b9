//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBLike is the minimal surface fixtures need; both *pgxpool.Pool and
// pgx transactions satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
