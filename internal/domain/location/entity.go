package location

import "time"

// Location is a campsite that carries its own rolling window of bookable slots.
// The identifier is an external string key, not a surrogate.
type Location struct {
	id          string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLocation(id, description string, now time.Time) Location {
	return Location{
		id:          id,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructLocation(id, description string, createdAt, updatedAt time.Time) Location {
	return Location{
		id:          id,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l Location) ID() string           { return l.id }
func (l Location) Description() string  { return l.description }
func (l Location) CreatedAt() time.Time { return l.createdAt }
func (l Location) UpdatedAt() time.Time { return l.updatedAt }
