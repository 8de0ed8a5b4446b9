//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campsite-reservation/internal/domain/location"
	"campsite-reservation/internal/domain/slot"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/usecase"
	"campsite-reservation/internal/usecase/shared"
	sharedmock "campsite-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type windowFixture struct {
	maintainer *usecase.WindowMaintainer
	slots      *sharedmock.MockSlotRepository
	locations  *sharedmock.MockLocationReader
}

func newWindowFixture(t *testing.T) *windowFixture {
	ctrl := gomock.NewController(t)

	slots := sharedmock.NewMockSlotRepository(ctrl)
	locations := sharedmock.NewMockLocationReader(ctrl)

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Slots().Return(slots).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	return &windowFixture{
		maintainer: usecase.NewWindowMaintainer(uow, locations, clock.NewMockClock(testNow)),
		slots:      slots,
		locations:  locations,
	}
}

func singleLocation() []location.Location {
	return []location.Location{
		location.ReconstructLocation("pacific-island", "", testNow, testNow),
	}
}

func TestRefreshWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the full horizon for a fresh location", func(t *testing.T) {
		f := newWindowFixture(t)
		f.locations.EXPECT().FindAll(ctx).Return(singleLocation(), nil)
		f.slots.EXPECT().Latest(ctx, "pacific-island").Return(nil, nil)

		var inserted []time.Time
		f.slots.EXPECT().Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s slot.Slot) error {
				assert.True(t, s.IsFree())
				inserted = append(inserted, s.Date())
				return nil
			}).Times(30)

		require.NoError(t, f.maintainer.RefreshWindow(ctx))
		assert.Equal(t, date(2025, 10, 2), inserted[0])
		assert.Equal(t, date(2025, 10, 31), inserted[len(inserted)-1])
	})

	t.Run("extends only past the latest materialized date", func(t *testing.T) {
		f := newWindowFixture(t)
		latest := slot.ReconstructSlot(1, "pacific-island", date(2025, 10, 21), nil, testNow, testNow)

		f.locations.EXPECT().FindAll(ctx).Return(singleLocation(), nil)
		f.slots.EXPECT().Latest(ctx, "pacific-island").Return(&latest, nil)

		var inserted []time.Time
		f.slots.EXPECT().Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s slot.Slot) error {
				inserted = append(inserted, s.Date())
				return nil
			}).Times(10)

		require.NoError(t, f.maintainer.RefreshWindow(ctx))
		assert.Equal(t, date(2025, 10, 22), inserted[0])
		assert.Equal(t, date(2025, 10, 31), inserted[len(inserted)-1])
	})

	t.Run("filled horizon inserts nothing", func(t *testing.T) {
		f := newWindowFixture(t)
		latest := slot.ReconstructSlot(1, "pacific-island", date(2025, 10, 31), nil, testNow, testNow)

		f.locations.EXPECT().FindAll(ctx).Return(singleLocation(), nil)
		f.slots.EXPECT().Latest(ctx, "pacific-island").Return(&latest, nil)

		require.NoError(t, f.maintainer.RefreshWindow(ctx))
	})

	t.Run("a failing location does not stop the others", func(t *testing.T) {
		f := newWindowFixture(t)
		locations := []location.Location{
			location.ReconstructLocation("broken", "", testNow, testNow),
			location.ReconstructLocation("healthy", "", testNow, testNow),
		}
		latest := slot.ReconstructSlot(1, "healthy", date(2025, 10, 31), nil, testNow, testNow)

		f.locations.EXPECT().FindAll(ctx).Return(locations, nil)
		f.slots.EXPECT().Latest(ctx, "broken").Return(nil, assert.AnError)
		f.slots.EXPECT().Latest(ctx, "healthy").Return(&latest, nil)

		err := f.maintainer.RefreshWindow(ctx)
		require.ErrorIs(t, err, assert.AnError)
	})
}
