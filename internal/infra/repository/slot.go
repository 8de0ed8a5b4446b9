package repository

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/slot"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const slotColumns = `id, location_id, slot_date, reservation_id, created_at, updated_at`

// SlotRepository is the durable (location, date) -> slot table. The Lock*
// methods take row-level locks held until the enclosing transaction ends, so
// they are only meaningful on a transaction-scoped instance; the scan and
// insert methods work on any DBTX.
type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// LockForUpdate locks the slots for the exact date set regardless of claim
// state. Used before releasing claims so concurrent writers serialize.
func (r *SlotRepository) LockForUpdate(ctx context.Context, locationID string, dates []time.Time) ([]slot.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE location_id = $1 AND slot_date = ANY($2::date[])
		ORDER BY slot_date
		FOR UPDATE
	`, locationID, formatDates(dates))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slots", err)
	}
	return scanSlots(rows)
}

// LockFreeForUpdate locks only unclaimed slots for the date set. Two
// transactions racing for the same date block here; the loser sees the row as
// claimed and gets it filtered out.
func (r *SlotRepository) LockFreeForUpdate(ctx context.Context, locationID string, dates []time.Time) ([]slot.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE location_id = $1 AND slot_date = ANY($2::date[]) AND reservation_id IS NULL
		ORDER BY slot_date
		FOR UPDATE
	`, locationID, formatDates(dates))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock free slots", err)
	}
	return scanSlots(rows)
}

// LockByReservation locks every slot currently claimed by a reservation.
func (r *SlotRepository) LockByReservation(ctx context.Context, reservationID uuid.UUID) ([]slot.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE reservation_id = $1
		ORDER BY slot_date
		FOR UPDATE
	`, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slots by reservation", err)
	}
	return scanSlots(rows)
}

// FreeDatesInRange scans unclaimed dates ascending without locking.
func (r *SlotRepository) FreeDatesInRange(ctx context.Context, locationID string, start, end time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot_date
		FROM slots
		WHERE location_id = $1
		  AND reservation_id IS NULL
		  AND slot_date >= $2::date AND slot_date <= $3::date
		ORDER BY slot_date
	`, locationID, formatDate(start), formatDate(end))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find free dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan free date", err)
		}
		dates = append(dates, clock.DateOf(d))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read free dates", err)
	}
	return dates, nil
}

// Latest returns the slot with the maximum date for a location, or nil when
// the location has no slots yet.
func (r *SlotRepository) Latest(ctx context.Context, locationID string) (*slot.Slot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE location_id = $1
		ORDER BY slot_date DESC
		LIMIT 1
	`, locationID)

	s, err := scanSlot(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find latest slot", err)
	}
	return &s, nil
}

// Insert adds a free slot. Conflicts on (location_id, slot_date) are ignored
// so concurrent window refreshes stay idempotent.
func (r *SlotRepository) Insert(ctx context.Context, s slot.Slot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO slots (location_id, slot_date, reservation_id, created_at, updated_at)
		VALUES ($1, $2::date, $3, $4, $5)
		ON CONFLICT (location_id, slot_date) DO NOTHING
	`, s.LocationID(), formatDate(s.Date()), s.ReservationID(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

// Update persists the claim state of a previously locked slot.
func (r *SlotRepository) Update(ctx context.Context, s slot.Slot) error {
	_, err := r.db.Exec(ctx, `
		UPDATE slots
		SET reservation_id = $2, updated_at = $3
		WHERE id = $1
	`, s.ID(), s.ReservationID(), s.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	return nil
}

func scanSlots(rows pgx.Rows) ([]slot.Slot, error) {
	defer rows.Close()

	var slots []slot.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}
	return slots, nil
}

func scanSlot(row pgx.Row) (slot.Slot, error) {
	var (
		id            int64
		locationID    string
		date          time.Time
		reservationID *uuid.UUID
		createdAt     time.Time
		updatedAt     time.Time
	)
	if err := row.Scan(&id, &locationID, &date, &reservationID, &createdAt, &updatedAt); err != nil {
		return slot.Slot{}, err
	}
	return slot.ReconstructSlot(id, locationID, date, reservationID, createdAt, updatedAt), nil
}

func formatDate(d time.Time) string {
	return d.Format(time.DateOnly)
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = formatDate(d)
	}
	return out
}
