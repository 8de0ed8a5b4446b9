//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campsite-reservation/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStayRange(t *testing.T) {
	t.Run("normalizes endpoints to calendar dates", func(t *testing.T) {
		stay := reservation.NewStayRange(
			time.Date(2025, 10, 15, 13, 45, 0, 0, time.UTC),
			time.Date(2025, 10, 17, 1, 0, 0, 0, time.UTC),
		)

		assert.Equal(t, date(2025, 10, 15), stay.Arrival())
		assert.Equal(t, date(2025, 10, 17), stay.Departure())
		assert.Equal(t, 2, stay.Days())
	})

	t.Run("dates are inclusive and ascending", func(t *testing.T) {
		stay := reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17))

		expected := []time.Time{
			date(2025, 10, 15),
			date(2025, 10, 16),
			date(2025, 10, 17),
		}
		assert.Empty(t, cmp.Diff(expected, stay.Dates()))
	})

	t.Run("single day stay occupies one date", func(t *testing.T) {
		stay := reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 15))

		assert.Equal(t, 0, stay.Days())
		assert.Len(t, stay.Dates(), 1)
	})

	t.Run("inverted range yields no dates", func(t *testing.T) {
		stay := reservation.NewStayRange(date(2025, 10, 17), date(2025, 10, 15))

		assert.Negative(t, stay.Days())
		assert.Empty(t, stay.Dates())
	})
}

func TestDeltaTo(t *testing.T) {
	cases := []struct {
		name         string
		current      reservation.StayRange
		next         reservation.StayRange
		expectRemove []time.Time
		expectAdd    []time.Time
	}{
		{
			name:         "disjoint ranges swap wholesale",
			current:      reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17)),
			next:         reservation.NewStayRange(date(2025, 10, 18), date(2025, 10, 20)),
			expectRemove: []time.Time{date(2025, 10, 15), date(2025, 10, 16), date(2025, 10, 17)},
			expectAdd:    []time.Time{date(2025, 10, 18), date(2025, 10, 19), date(2025, 10, 20)},
		},
		{
			name:         "overlapping ranges exchange only non-shared dates",
			current:      reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17)),
			next:         reservation.NewStayRange(date(2025, 10, 16), date(2025, 10, 18)),
			expectRemove: []time.Time{date(2025, 10, 15)},
			expectAdd:    []time.Time{date(2025, 10, 18)},
		},
		{
			name:         "shrinking within the same window only releases",
			current:      reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17)),
			next:         reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 16)),
			expectRemove: []time.Time{date(2025, 10, 17)},
			expectAdd:    []time.Time{},
		},
		{
			name:         "identical ranges produce an empty delta",
			current:      reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17)),
			next:         reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 17)),
			expectRemove: []time.Time{},
			expectAdd:    []time.Time{},
		},
		{
			name:         "adjacent ranges count as disjoint",
			current:      reservation.NewStayRange(date(2025, 10, 15), date(2025, 10, 16)),
			next:         reservation.NewStayRange(date(2025, 10, 17), date(2025, 10, 18)),
			expectRemove: []time.Time{date(2025, 10, 15), date(2025, 10, 16)},
			expectAdd:    []time.Time{date(2025, 10, 17), date(2025, 10, 18)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delta := tc.current.DeltaTo(tc.next)

			assert.Empty(t, cmp.Diff(tc.expectRemove, delta.DatesToRemove))
			assert.Empty(t, cmp.Diff(tc.expectAdd, delta.DatesToAdd))
		})
	}
}
