//go:build unit

package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStandardRefundPolicy(t *testing.T) {
	policy := booking.NewStandardRefundPolicy()
	guest := booking.Actor{ID: uuid.New(), Role: user.RoleGuest}
	admin := booking.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	t.Run("guest cancellation withholds the fee", func(t *testing.T) {
		breakdown := policy.Refund(1000000, guest)

		assert.Equal(t, int64(20000), breakdown.DeductionCents)
		assert.Equal(t, int64(980000), breakdown.RefundCents)
	})

	t.Run("admin cancellation refunds in full", func(t *testing.T) {
		breakdown := policy.Refund(1000000, admin)

		assert.Equal(t, int64(0), breakdown.DeductionCents)
		assert.Equal(t, int64(1000000), breakdown.RefundCents)
	})

	t.Run("refund plus deduction equals the total", func(t *testing.T) {
		for _, total := range []int64{0, 1, 999, 1025, 1075, 123456789} {
			breakdown := policy.Refund(total, guest)
			assert.Equal(t, total, breakdown.RefundCents+breakdown.DeductionCents, "total %d", total)
		}
	})

	t.Run("fee rounds half to even", func(t *testing.T) {
		// 1025 * 2% = 20.5, quotient 20 is even so it stays
		breakdown := policy.Refund(1025, guest)
		assert.Equal(t, int64(20), breakdown.DeductionCents)

		// 1075 * 2% = 21.5, quotient 21 is odd so it rounds up
		breakdown = policy.Refund(1075, guest)
		assert.Equal(t, int64(22), breakdown.DeductionCents)
	})
}
