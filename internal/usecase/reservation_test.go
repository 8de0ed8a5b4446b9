//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/domain/slot"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/usecase"
	"campsite-reservation/internal/usecase/shared"
	sharedmock "campsite-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationFixture struct {
	uc           usecase.ReservationUseCase
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	slots        *sharedmock.MockSlotRepository
	reservations *sharedmock.MockReservationRepository
	locations    *sharedmock.MockLocationRepository
	reader       *sharedmock.MockReservationReader
}

func newReservationFixture(t *testing.T) *reservationFixture {
	ctrl := gomock.NewController(t)

	slots := sharedmock.NewMockSlotRepository(ctrl)
	reservations := sharedmock.NewMockReservationRepository(ctrl)
	locations := sharedmock.NewMockLocationRepository(ctrl)
	reader := sharedmock.NewMockReservationReader(ctrl)
	slotReader := sharedmock.NewMockSlotReader(ctrl)

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Slots().Return(slots).AnyTimes()
	tx.EXPECT().Reservations().Return(reservations).AnyTimes()
	tx.EXPECT().Locations().Return(locations).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	clk := clock.NewMockClock(testNow)
	allocator := usecase.NewAvailabilityAllocator(slotReader, clk)

	return &reservationFixture{
		uc:           usecase.NewReservationUseCase(uow, allocator, reader, clk),
		uow:          uow,
		tx:           tx,
		slots:        slots,
		reservations: reservations,
		locations:    locations,
		reader:       reader,
	}
}

func validInput() usecase.ReservationInput {
	return usecase.ReservationInput{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		LocationID: "pacific-island",
		Arrival:    date(2025, 10, 15),
		Departure:  date(2025, 10, 17),
	}
}

func confirmedReservation(t *testing.T, input usecase.ReservationInput) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(
		testNow,
		reservation.NewGuest(input.FirstName, input.LastName, input.Email),
		input.LocationID,
		reservation.NewStayRange(input.Arrival, input.Departure),
	)
	require.NoError(t, err)
	return res
}

func notFoundErr() error {
	return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("claims slots and persists the reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		input := validInput()
		dates := []time.Time{date(2025, 10, 15), date(2025, 10, 16), date(2025, 10, 17)}

		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(true, nil)
		f.slots.EXPECT().LockFreeForUpdate(ctx, "pacific-island", dates).
			Return(freeSlots("pacific-island", dates...), nil)
		f.slots.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(3)

		var persisted *reservation.Reservation
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				persisted = res
				return nil
			})

		created, err := f.uc.CreateReservation(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.IsConfirmed())
		assert.NotEqual(t, uuid.Nil, created.ID())
		assert.Same(t, created, persisted)
	})

	t.Run("rejects an invalid stay before touching storage", func(t *testing.T) {
		f := newReservationFixture(t)
		input := validInput()
		input.Departure = date(2025, 10, 25)

		created, err := f.uc.CreateReservation(ctx, input)
		require.ErrorIs(t, err, usecase.ErrInvalidReservation)
		assert.Nil(t, created)

		var verr *reservation.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "Reservation can only be made for a maximum of 3 days")
	})

	t.Run("unknown location", func(t *testing.T) {
		f := newReservationFixture(t)

		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(false, nil)

		created, err := f.uc.CreateReservation(ctx, validInput())
		require.ErrorIs(t, err, usecase.ErrLocationNotFound)
		assert.Nil(t, created)
	})

	t.Run("occupied dates roll back without a partial claim", func(t *testing.T) {
		f := newReservationFixture(t)
		dates := []time.Time{date(2025, 10, 15), date(2025, 10, 16), date(2025, 10, 17)}

		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(true, nil)
		f.slots.EXPECT().LockFreeForUpdate(ctx, "pacific-island", dates).
			Return(freeSlots("pacific-island", dates[0]), nil)

		created, err := f.uc.CreateReservation(ctx, validInput())
		require.ErrorIs(t, err, usecase.ErrSlotsUnavailable)
		assert.Nil(t, created)
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("moves only the stay delta", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput())

		// Shift Oct 15-17 to Oct 16-18: claim the 18th, release the 15th.
		input := validInput()
		input.Arrival = date(2025, 10, 16)
		input.Departure = date(2025, 10, 18)

		f.reservations.EXPECT().FindByIDAndStatus(ctx, existing.ID(), reservation.StatusConfirmed).
			Return(existing, nil)
		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(true, nil)

		f.slots.EXPECT().LockFreeForUpdate(ctx, "pacific-island", []time.Time{date(2025, 10, 18)}).
			Return(freeSlots("pacific-island", date(2025, 10, 18)), nil)
		f.slots.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(2)

		resID := existing.ID()
		f.slots.EXPECT().LockForUpdate(ctx, "pacific-island", []time.Time{date(2025, 10, 15)}).
			Return([]slot.Slot{
				slot.ReconstructSlot(1, "pacific-island", date(2025, 10, 15), &resID, testNow, testNow),
			}, nil)

		f.reservations.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := f.uc.UpdateReservation(ctx, existing.ID(), input)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, existing.ID(), updated.ID())
		assert.Equal(t, date(2025, 10, 16), updated.Stay().Arrival())
		assert.Equal(t, date(2025, 10, 18), updated.Stay().Departure())
	})

	t.Run("identical stay touches no slots", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput())

		f.reservations.EXPECT().FindByIDAndStatus(ctx, existing.ID(), reservation.StatusConfirmed).
			Return(existing, nil)
		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(true, nil)
		f.reservations.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := f.uc.UpdateReservation(ctx, existing.ID(), validInput())
		require.NoError(t, err)
		assert.Equal(t, existing.ID(), updated.ID())
	})

	t.Run("missing or cancelled reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		id := uuid.New()

		f.reservations.EXPECT().FindByIDAndStatus(ctx, id, reservation.StatusConfirmed).
			Return(nil, notFoundErr())

		updated, err := f.uc.UpdateReservation(ctx, id, validInput())
		require.ErrorIs(t, err, usecase.ErrReservationNotFound)
		assert.Nil(t, updated)
	})

	t.Run("failed claim keeps the old dates", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput())

		input := validInput()
		input.Arrival = date(2025, 10, 20)
		input.Departure = date(2025, 10, 22)
		dates := []time.Time{date(2025, 10, 20), date(2025, 10, 21), date(2025, 10, 22)}

		f.reservations.EXPECT().FindByIDAndStatus(ctx, existing.ID(), reservation.StatusConfirmed).
			Return(existing, nil)
		f.locations.EXPECT().Exists(ctx, "pacific-island").Return(true, nil)
		// The new range is taken; nothing is released and nothing is updated.
		f.slots.EXPECT().LockFreeForUpdate(ctx, "pacific-island", dates).Return(nil, nil)

		updated, err := f.uc.UpdateReservation(ctx, existing.ID(), input)
		require.ErrorIs(t, err, usecase.ErrSlotsUnavailable)
		assert.Nil(t, updated)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("releases slots and marks the reservation cancelled", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput())
		resID := existing.ID()

		f.reservations.EXPECT().FindByID(ctx, resID).Return(existing, nil)
		f.slots.EXPECT().LockByReservation(ctx, resID).
			Return([]slot.Slot{
				slot.ReconstructSlot(1, "pacific-island", date(2025, 10, 15), &resID, testNow, testNow),
			}, nil)
		f.slots.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		f.reservations.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				assert.True(t, res.IsCancelled())
				return nil
			})

		cancelled, err := f.uc.CancelReservation(ctx, resID)
		require.NoError(t, err)
		assert.True(t, cancelled.IsCancelled())
		assert.Equal(t, resID, cancelled.ID())
	})

	t.Run("cancelling twice is idempotent", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput()).Cancelled(testNow)

		f.reservations.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)

		cancelled, err := f.uc.CancelReservation(ctx, existing.ID())
		require.NoError(t, err)
		assert.Same(t, existing, cancelled)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		id := uuid.New()

		f.reservations.EXPECT().FindByID(ctx, id).Return(nil, notFoundErr())

		cancelled, err := f.uc.CancelReservation(ctx, id)
		require.ErrorIs(t, err, usecase.ErrReservationNotFound)
		assert.Nil(t, cancelled)
	})
}

func TestGetReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a confirmed reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := confirmedReservation(t, validInput())

		f.reader.EXPECT().FindByIDAndStatus(ctx, existing.ID(), reservation.StatusConfirmed).
			Return(existing, nil)

		got, err := f.uc.GetReservation(ctx, existing.ID())
		require.NoError(t, err)
		assert.Same(t, existing, got)
	})

	t.Run("cancelled reservations read as not found", func(t *testing.T) {
		f := newReservationFixture(t)
		id := uuid.New()

		f.reader.EXPECT().FindByIDAndStatus(ctx, id, reservation.StatusConfirmed).
			Return(nil, notFoundErr())

		got, err := f.uc.GetReservation(ctx, id)
		require.ErrorIs(t, err, usecase.ErrReservationNotFound)
		assert.Nil(t, got)
	})
}
