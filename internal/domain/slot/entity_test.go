//go:build unit

package slot_test

import (
	"testing"
	"time"

	"campsite-reservation/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new slot is free and date-normalized", func(t *testing.T) {
		s := slot.NewSlot("pacific-island", time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC), now)

		assert.True(t, s.IsFree())
		assert.Nil(t, s.ReservationID())
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), s.Date())
	})

	t.Run("claim and release round trip", func(t *testing.T) {
		s := slot.NewSlot("pacific-island", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now)
		resID := uuid.New()

		claimed := s.Claimed(resID, now.Add(time.Minute))
		require.False(t, claimed.IsFree())
		require.NotNil(t, claimed.ReservationID())
		assert.Equal(t, resID, *claimed.ReservationID())
		assert.Equal(t, now.Add(time.Minute), claimed.UpdatedAt())

		// The original copy stays free.
		assert.True(t, s.IsFree())

		released := claimed.Released(now.Add(2 * time.Minute))
		assert.True(t, released.IsFree())
		assert.Nil(t, released.ReservationID())
		assert.False(t, claimed.IsFree())
	})

	t.Run("reservation id accessor returns a copy", func(t *testing.T) {
		s := slot.NewSlot("pacific-island", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now)
		resID := uuid.New()
		claimed := s.Claimed(resID, now)

		got := claimed.ReservationID()
		*got = uuid.New()

		assert.Equal(t, resID, *claimed.ReservationID())
	})
}
