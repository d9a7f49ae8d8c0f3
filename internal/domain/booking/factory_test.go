//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/clock"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateBooking(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now), booking.NewStandardPriceCalculator())

	prop, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)

	userID := uuid.New()
	contact := booking.NewContactInfo("+1-555-0100", "guest@example.com", "")

	t.Run("creates a pending booking priced at the base rate", func(t *testing.T) {
		entity, err := factory.CreateBooking(prop, userID, date(2026, 6, 10), date(2026, 6, 13), 2, contact)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, entity.Status())
		assert.Equal(t, booking.PaymentUnpaid, entity.PaymentStatus())
		assert.Equal(t, prop.ID(), entity.PropertyID())
		assert.Equal(t, userID, entity.UserID())
		// 3 nights at 15000; tax and fee are quote-only
		assert.Equal(t, int64(45000), entity.TotalPriceCents())
		assert.NotEqual(t, uuid.Nil, entity.ID())
	})

	t.Run("rejects zero guests", func(t *testing.T) {
		_, err := factory.CreateBooking(prop, userID, date(2026, 6, 10), date(2026, 6, 13), 0, contact)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("rejects guests above property capacity", func(t *testing.T) {
		_, err := factory.CreateBooking(prop, userID, date(2026, 6, 10), date(2026, 6, 13), prop.MaxGuests()+1, contact)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("rejects past check-in", func(t *testing.T) {
		_, err := factory.CreateBooking(prop, userID, date(2026, 5, 20), date(2026, 5, 25), 2, contact)
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})
}
