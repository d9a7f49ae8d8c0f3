//go:build unit

package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestApplyBasisPoints(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		bps    int64
		want   int64
	}{
		{"exact division", 10000, 500, 500},
		{"rounds down below half", 10001, 500, 500},
		{"rounds up above half", 1111, 500, 56},
		{"half rounds to even when quotient even", 1025, 200, 20},
		{"half rounds to even when quotient odd", 1075, 200, 22},
		{"zero amount", 0, 500, 0},
		{"zero rate", 123456, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.ApplyBasisPoints(tt.amount, tt.bps))
		})
	}
}

func TestStandardPriceCalculatorQuote(t *testing.T) {
	calc := booking.NewStandardPriceCalculator()

	t.Run("three night stay", func(t *testing.T) {
		stay := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 13))
		quote := calc.Quote(15000, stay)

		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, int64(45000), quote.BaseCents)
		assert.Equal(t, int64(2250), quote.TaxCents)
		assert.Equal(t, int64(900), quote.FeeCents)
		assert.Equal(t, int64(48150), quote.TotalCents)
	})

	t.Run("same-day stay is charged one night", func(t *testing.T) {
		stay := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 10))
		quote := calc.Quote(15000, stay)

		assert.Equal(t, 1, quote.Nights)
		assert.Equal(t, int64(15000), quote.BaseCents)
	})

	t.Run("quoting is deterministic", func(t *testing.T) {
		stay := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 17))
		first := calc.Quote(9999, stay)
		second := calc.Quote(9999, stay)
		assert.Equal(t, first, second)
	})

	t.Run("total is the sum of its parts", func(t *testing.T) {
		stay := booking.ReconstructStayPeriod(date(2026, 6, 10), date(2026, 6, 12))
		quote := calc.Quote(12345, stay)
		assert.Equal(t, quote.BaseCents+quote.TaxCents+quote.FeeCents, quote.TotalCents)
	})
}
