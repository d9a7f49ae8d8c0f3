package booking

// Rates charged on top of the base price, in basis points. Tax and service
// fee appear on quotes and receipts only; the amount persisted as the
// booking's total price is the base price alone.
const (
	TaxRateBasisPoints        int64 = 500
	ServiceFeeRateBasisPoints int64 = 200
)

type Quote struct {
	Nights     int
	BaseCents  int64
	TaxCents   int64
	FeeCents   int64
	TotalCents int64
}

type PriceCalculator interface {
	Quote(nightlyRateCents int64, stay StayPeriod) Quote
}

type StandardPriceCalculator struct{}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{}
}

func (c *StandardPriceCalculator) Quote(nightlyRateCents int64, stay StayPeriod) Quote {
	nights := stay.Nights()
	base := nightlyRateCents * int64(nights)
	tax := ApplyBasisPoints(base, TaxRateBasisPoints)
	fee := ApplyBasisPoints(base, ServiceFeeRateBasisPoints)

	return Quote{
		Nights:     nights,
		BaseCents:  base,
		TaxCents:   tax,
		FeeCents:   fee,
		TotalCents: base + tax + fee,
	}
}

// ApplyBasisPoints computes amount*bps/10000 rounded half-to-even at cent
// precision, avoiding systematic bias across many charges.
func ApplyBasisPoints(amountCents, bps int64) int64 {
	num := amountCents * bps
	quotient := num / 10000
	remainder := num % 10000

	const half = 5000
	if remainder > half || (remainder == half && quotient%2 != 0) {
		quotient++
	}
	return quotient
}
