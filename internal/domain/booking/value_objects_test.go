//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayPeriod(t *testing.T) {
	today := date(2026, 6, 1)

	t.Run("valid period", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(date(2026, 6, 10), date(2026, 6, 13), today)
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Days())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("same-day stay is allowed and charged one night", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(date(2026, 6, 10), date(2026, 6, 10), today)
		require.NoError(t, err)
		assert.Equal(t, 0, stay.Days())
		assert.Equal(t, 1, stay.Nights())
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 6, 13), date(2026, 6, 10), today)
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("check-in in the past rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 5, 31), date(2026, 6, 3), today)
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})

	t.Run("check-in today allowed", func(t *testing.T) {
		_, err := booking.NewStayPeriod(today, date(2026, 6, 3), today)
		assert.NoError(t, err)
	})

	t.Run("time-of-day is truncated", func(t *testing.T) {
		late := time.Date(2026, 6, 10, 23, 59, 0, 0, time.UTC)
		stay, err := booking.NewStayPeriod(late, date(2026, 6, 12), today)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 6, 10), stay.CheckIn())
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 15))

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical period", date(2026, 6, 10), date(2026, 6, 15), true},
		{"contained inside", date(2026, 6, 11), date(2026, 6, 14), true},
		{"overlaps start", date(2026, 6, 8), date(2026, 6, 11), true},
		{"overlaps end", date(2026, 6, 14), date(2026, 6, 18), true},
		{"back-to-back before does not overlap", date(2026, 6, 5), date(2026, 6, 10), false},
		{"back-to-back after does not overlap", date(2026, 6, 15), date(2026, 6, 20), false},
		{"fully before", date(2026, 6, 1), date(2026, 6, 5), false},
		{"fully after", date(2026, 6, 20), date(2026, 6, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := booking.ReconstructStayPeriod(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, base.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(base))
		})
	}
}

func TestStayPeriodEnded(t *testing.T) {
	stay := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 15))

	assert.False(t, stay.Ended(date(2026, 6, 14)))
	assert.True(t, stay.Ended(date(2026, 6, 15)))
	assert.True(t, stay.Ended(date(2026, 6, 20)))
}

func TestContactInfoTrimsWhitespace(t *testing.T) {
	contact := booking.NewContactInfo("  +1-555-0100 ", " guest@example.com ", "  late arrival ")

	assert.Equal(t, "+1-555-0100", contact.Phone())
	assert.Equal(t, "guest@example.com", contact.Email())
	assert.Equal(t, "late arrival", contact.SpecialRequests())
}
