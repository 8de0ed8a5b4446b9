package repository

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/location"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"
)

type LocationRepository struct {
	db db.DBTX
}

func NewLocationRepository(dbtx db.DBTX) *LocationRepository {
	return &LocationRepository{db: dbtx}
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]location.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT location_id, description, created_at, updated_at
		FROM locations
		ORDER BY location_id
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find locations", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var (
			id, description      string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &description, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location", err)
		}
		locations = append(locations, location.ReconstructLocation(id, description, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locations", err)
	}
	return locations, nil
}

func (r *LocationRepository) Exists(ctx context.Context, locationID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM locations WHERE location_id = $1)
	`, locationID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check location existence", err)
	}
	return exists, nil
}
