package booking

// CancellationFeeRateBasisPoints is the deduction withheld from a
// self-service refund.
const CancellationFeeRateBasisPoints int64 = 200

type RefundBreakdown struct {
	RefundCents    int64
	DeductionCents int64
}

// RefundPolicy maps the cancelling actor and the charged total to a refund.
type RefundPolicy interface {
	Refund(totalPriceCents int64, actor Actor) RefundBreakdown
}

// StandardRefundPolicy: a guest cancelling their own booking forfeits a 2%
// cancellation fee; an administrative cancellation refunds in full.
type StandardRefundPolicy struct{}

func NewStandardRefundPolicy() *StandardRefundPolicy {
	return &StandardRefundPolicy{}
}

func (p *StandardRefundPolicy) Refund(totalPriceCents int64, actor Actor) RefundBreakdown {
	if actor.IsAdmin() {
		return RefundBreakdown{RefundCents: totalPriceCents, DeductionCents: 0}
	}

	deduction := ApplyBasisPoints(totalPriceCents, CancellationFeeRateBasisPoints)
	return RefundBreakdown{
		RefundCents:    totalPriceCents - deduction,
		DeductionCents: deduction,
	}
}
