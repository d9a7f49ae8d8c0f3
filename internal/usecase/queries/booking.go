package queries

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrPropertyNotFound = errs.New("property not found")
	ErrForbidden        = errs.New("access denied")
	ErrValidation       = errs.New("validation failed")
	ErrQueryFailed      = errs.New("query failed")
)

// BookingReadStore is the read-side persistence port for bookings.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error)
	CountOverlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type HistoryReadStore interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]HistoryEntryView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor booking.Actor) (*BookingView, error)
	// GetByIDSystem bypasses actor scoping for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error)
	CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
	QuotePrice(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, guests int) (*QuoteView, error)
	GetHistory(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) ([]HistoryEntryView, error)
	GetReceipt(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) (*ReceiptView, error)
}

type bookingQueries struct {
	bookings   BookingReadStore
	properties PropertyReadStore
	history    HistoryReadStore
	calculator booking.PriceCalculator
	clock      clock.Clock
}

func NewBookingQueries(
	bookings BookingReadStore,
	properties PropertyReadStore,
	history HistoryReadStore,
	calculator booking.PriceCalculator,
	c clock.Clock,
) BookingQueries {
	return &bookingQueries{
		bookings:   bookings,
		properties: properties,
		history:    history,
		calculator: calculator,
		clock:      c,
	}
}

// GetByID returns the booking detail. Guests may only read their own
// bookings; admins may read any.
func (q *bookingQueries) GetByID(ctx context.Context, id uuid.UUID, actor booking.Actor) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	if !actor.IsAdmin() && view.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueries) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error) {
	items, err := q.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

// CheckAvailability reports whether any pending or confirmed booking overlaps
// the requested period. The nights figure here is the raw day span, which may
// be zero for a same-day check.
func (q *bookingQueries) CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	stay, err := booking.NewStayPeriod(checkIn, checkOut, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	prop, err := q.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrPropertyNotFound)
	}

	overlapping, err := q.bookings.CountOverlapping(ctx, propertyID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &AvailabilityView{
		Available:          overlapping == 0,
		PropertyID:         propertyID,
		CheckIn:            stay.CheckIn(),
		CheckOut:           stay.CheckOut(),
		Nights:             stay.Days(),
		PricePerNightCents: prop.NightlyRateCents,
		MaxGuests:          prop.MaxGuests,
	}, nil
}

// QuotePrice prices a prospective stay without touching availability. A
// same-day stay is charged as one night.
func (q *bookingQueries) QuotePrice(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, guests int) (*QuoteView, error) {
	stay, err := booking.NewStayPeriod(checkIn, checkOut, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	prop, err := q.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrPropertyNotFound)
	}

	if guests < 1 || guests > prop.MaxGuests {
		return nil, errs.Mark(booking.ErrInvalidGuestCount, ErrValidation)
	}

	quote := q.calculator.Quote(prop.NightlyRateCents, stay)

	return &QuoteView{
		PropertyID:         propertyID,
		Nights:             quote.Nights,
		Guests:             guests,
		PricePerNightCents: prop.NightlyRateCents,
		BaseCents:          quote.BaseCents,
		TaxCents:           quote.TaxCents,
		FeeCents:           quote.FeeCents,
		TotalCents:         quote.TotalCents,
		MaxGuests:          prop.MaxGuests,
	}, nil
}

// GetHistory returns the status trail newest first, scoped like GetByID.
func (q *bookingQueries) GetHistory(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) ([]HistoryEntryView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	if !actor.IsAdmin() && view.UserID != actor.ID {
		return nil, ErrForbidden
	}

	entries, err := q.history.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return entries, nil
}

// GetReceipt re-derives the full price breakdown from the stored base price so
// the receipt matches what a quote at booking time would have shown.
func (q *bookingQueries) GetReceipt(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) (*ReceiptView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	if !actor.IsAdmin() && view.UserID != actor.ID {
		return nil, ErrForbidden
	}

	prop, err := q.properties.FindByID(ctx, view.PropertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrPropertyNotFound)
	}

	stay := booking.ReconstructStayPeriod(view.CheckIn, view.CheckOut)
	quote := q.calculator.Quote(prop.NightlyRateCents, stay)

	status := booking.Status(view.Status)
	ownerActor := booking.Actor{ID: view.UserID, Role: user.RoleGuest}

	return &ReceiptView{
		BookingID:     view.ID,
		BookingStatus: view.Status,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
		Guest: ReceiptGuest{
			ContactPhone: view.ContactPhone,
			ContactEmail: view.ContactEmail,
		},
		Property: ReceiptProperty{
			Title:        prop.Title,
			City:         prop.City,
			PropertyType: prop.PropertyType,
		},
		Details: ReceiptDetails{
			CheckIn:         view.CheckIn,
			CheckOut:        view.CheckOut,
			Nights:          quote.Nights,
			Guests:          view.Guests,
			SpecialRequests: view.SpecialRequests,
		},
		Pricing: ReceiptPricing{
			PricePerNightCents: prop.NightlyRateCents,
			Nights:             quote.Nights,
			BaseCents:          quote.BaseCents,
			TaxCents:           quote.TaxCents,
			FeeCents:           quote.FeeCents,
			SubtotalCents:      quote.BaseCents,
			TotalPaidCents:     quote.TotalCents,
		},
		Payment: ReceiptPayment{
			PaymentStatus:        view.PaymentStatus,
			PaymentID:            view.PaymentID,
			RefundAmountCents:    view.RefundAmountCents,
			CancellationFeeCents: view.CancellationFeeCents,
		},
		StatusInfo: ReceiptStatus{
			CurrentStatus: view.Status,
			Confirmed:     status == booking.StatusConfirmed,
			CanCancel:     canTransition(status, booking.StatusCancelled, ownerActor, stay, q.clock.Now()),
			CanComplete:   canTransition(status, booking.StatusCompleted, ownerActor, stay, q.clock.Now()),
		},
	}, nil
}

// canTransition consults the guard table without mutating anything.
func canTransition(from, to booking.Status, actor booking.Actor, stay booking.StayPeriod, now time.Time) bool {
	draft := booking.ReconstructBooking(
		uuid.Nil, uuid.Nil, actor.ID,
		stay, 1, booking.ContactInfo{}, 0,
		from, booking.PaymentUnpaid, "", nil, nil,
		now, now,
	)
	return draft.Transition(to, actor, now) == nil
}
