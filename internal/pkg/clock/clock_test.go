//go:build unit

package clock_test

import (
	"testing"
	"time"

	"staybook/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid-day UTC truncates to midnight",
			now:  time.Date(2025, 6, 15, 14, 30, 45, 123, time.UTC),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight is unchanged",
			now:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC zone converts before truncating",
			now:  time.Date(2025, 6, 15, 22, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "zone offset can shift the date",
			now:  time.Date(2025, 6, 15, 2, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			want: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := clock.NewMockClock(tt.now)
			got := clock.Today(mc)
			assert.True(t, got.Equal(tt.want), "Today() = %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMockClockAdvance(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	mc := clock.NewMockClock(base)

	mc.Add(48 * time.Hour)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), clock.Today(mc))

	mc.Set(base)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), clock.Today(mc))
}
