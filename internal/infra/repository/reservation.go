package repository

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, first_name, last_name, email, location_id, arrival, departure, status, created_at, updated_at`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (id, first_name, last_name, email, location_id, arrival, departure, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, $8, $9, $10)
	`,
		res.ID(),
		res.Guest().FirstName(),
		res.Guest().LastName(),
		res.Guest().Email(),
		res.LocationID(),
		formatDate(res.Stay().Arrival()),
		formatDate(res.Stay().Departure()),
		res.Status().String(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET first_name = $2, last_name = $3, email = $4, location_id = $5,
		    arrival = $6::date, departure = $7::date, status = $8, updated_at = $9
		WHERE id = $1
	`,
		res.ID(),
		res.Guest().FirstName(),
		res.Guest().LastName(),
		res.Guest().Email(),
		res.LocationID(),
		formatDate(res.Stay().Arrival()),
		formatDate(res.Stay().Departure()),
		res.Status().String(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1
	`, id)
	return scanReservation(row)
}

// FindByIDAndStatus is the lookup backing retrieve/update: a reservation that
// exists but is not in the requested status reads as not found.
func (r *ReservationRepository) FindByIDAndStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1 AND status = $2
	`, id, status.String())
	return scanReservation(row)
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id                   uuid.UUID
		firstName, lastName  string
		email, locationID    string
		arrival, departure   time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &firstName, &lastName, &email, &locationID, &arrival, &departure, &status, &createdAt, &updatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return reservation.ReconstructReservation(
		id,
		reservation.NewGuest(firstName, lastName, email),
		locationID,
		reservation.NewStayRange(arrival, departure),
		reservation.Status(status),
		createdAt,
		updatedAt,
	), nil
}
