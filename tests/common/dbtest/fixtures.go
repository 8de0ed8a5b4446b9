//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultLocationID = "pacific-island"

// CreateTestLocation inserts a location, ignoring duplicates so tests can
// share fixtures.
func CreateTestLocation(t *testing.T, db DBLike, locationID, description string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO locations (location_id, description) VALUES ($1, $2)
		ON CONFLICT (location_id) DO NOTHING
	`, locationID, description)
	require.NoError(t, err)
}

// SeedReferenceData inserts the baseline locations tests rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO locations (location_id, description) VALUES
		    ('pacific-island', 'Campsite on the Pacific island underneath the volcano'),
		    ('mountain-lake', 'Campsite by the mountain lake')
		ON CONFLICT (location_id) DO NOTHING
	`)
	return err
}

// ResetDB truncates all mutable tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE TABLE slots, reservations, locations CASCADE`)
	if err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
