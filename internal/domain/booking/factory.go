package booking

import (
	"time"

	"staybook/internal/domain/property"
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(c clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           c,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking validates the request against the property snapshot and
// builds a pending booking priced at creation time. The persisted total is
// the base price; tax and fee are quote-only figures.
func (f *Factory) CreateBooking(
	prop *property.Property,
	userID uuid.UUID,
	checkIn, checkOut time.Time,
	guests int,
	contact ContactInfo,
) (*Booking, error) {
	now := f.Clock.Now()

	stay, err := NewStayPeriod(checkIn, checkOut, clock.Today(f.Clock))
	if err != nil {
		return nil, err
	}

	if guests < 1 || guests > prop.MaxGuests() {
		return nil, ErrInvalidGuestCount
	}

	quote := f.PriceCalculator.Quote(prop.NightlyRateCents(), stay)

	return NewBooking(prop.ID(), userID, stay, guests, contact, quote.BaseCents, now), nil
}
