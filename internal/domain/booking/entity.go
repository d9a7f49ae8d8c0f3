package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount        = errors.New("guest count is outside the allowed range")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrNotBookingOwner          = errors.New("actor is not the booking owner")
	ErrCompletionBeforeCheckout = errors.New("cannot complete booking before the check-out date")
)

// Booking is the central aggregate. Only transition methods mutate status;
// refund amounts are written exclusively by cancellation.
type Booking struct {
	id                   uuid.UUID
	propertyID           uuid.UUID
	userID               uuid.UUID
	stay                 StayPeriod
	guests               int
	contact              ContactInfo
	totalPriceCents      int64
	status               Status
	paymentStatus        PaymentStatus
	paymentID            string
	refundAmountCents    *int64
	cancellationFeeCents *int64
	createdAt            time.Time
	updatedAt            time.Time
}

func NewBooking(
	propertyID, userID uuid.UUID,
	stay StayPeriod,
	guests int,
	contact ContactInfo,
	totalPriceCents int64,
	now time.Time,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		propertyID:      propertyID,
		userID:          userID,
		stay:            stay,
		guests:          guests,
		contact:         contact,
		totalPriceCents: totalPriceCents,
		status:          StatusPending,
		paymentStatus:   PaymentUnpaid,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBooking(
	id, propertyID, userID uuid.UUID,
	stay StayPeriod,
	guests int,
	contact ContactInfo,
	totalPriceCents int64,
	status Status,
	paymentStatus PaymentStatus,
	paymentID string,
	refundAmountCents, cancellationFeeCents *int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                   id,
		propertyID:           propertyID,
		userID:               userID,
		stay:                 stay,
		guests:               guests,
		contact:              contact,
		totalPriceCents:      totalPriceCents,
		status:               status,
		paymentStatus:        paymentStatus,
		paymentID:            paymentID,
		refundAmountCents:    refundAmountCents,
		cancellationFeeCents: cancellationFeeCents,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) PropertyID() uuid.UUID        { return b.propertyID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Stay() StayPeriod             { return b.stay }
func (b *Booking) Guests() int                  { return b.guests }
func (b *Booking) Contact() ContactInfo         { return b.contact }
func (b *Booking) TotalPriceCents() int64       { return b.totalPriceCents }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentID() string            { return b.paymentID }
func (b *Booking) RefundAmountCents() *int64    { return b.refundAmountCents }
func (b *Booking) CancellationFeeCents() *int64 { return b.cancellationFeeCents }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// Confirmed mirrors status == confirmed for legacy consumers. It is a derived
// projection, never an independent source of truth.
func (b *Booking) Confirmed() bool {
	return b.status == StatusConfirmed
}

type transitionKey struct {
	from Status
	to   Status
}

type transitionRule struct {
	ownerAllowed       bool
	adminAllowed       bool
	ownerAfterCheckout bool
}

// The single transition-guard table, keyed by (from, to). Anything absent is
// rejected; terminal statuses have no outgoing edges. No edge enters
// refunded: the payment collaborator owns that status.
var transitionRules = map[transitionKey]transitionRule{
	{StatusPending, StatusConfirmed}:   {ownerAllowed: true, adminAllowed: true},
	{StatusPending, StatusCancelled}:   {ownerAllowed: true, adminAllowed: true},
	{StatusConfirmed, StatusCancelled}: {ownerAllowed: true, adminAllowed: true},
	{StatusConfirmed, StatusCompleted}: {ownerAllowed: true, adminAllowed: true, ownerAfterCheckout: true},
}

// Transition validates the requested status change against the guard table
// and applies it. Non-admin actors must be the booking's owner.
func (b *Booking) Transition(target Status, actor Actor, now time.Time) error {
	if !actor.IsAdmin() && actor.ID != b.userID {
		return ErrNotBookingOwner
	}

	rule, ok := transitionRules[transitionKey{from: b.status, to: target}]
	if !ok {
		return fmt.Errorf("cannot transition booking from %s to %s: %w", b.status, target, ErrInvalidTransition)
	}

	if actor.IsAdmin() {
		if !rule.adminAllowed {
			return fmt.Errorf("cannot transition booking from %s to %s as admin: %w", b.status, target, ErrInvalidTransition)
		}
	} else {
		if !rule.ownerAllowed {
			return fmt.Errorf("cannot transition booking from %s to %s as owner: %w", b.status, target, ErrInvalidTransition)
		}
		if rule.ownerAfterCheckout && !b.stay.Ended(now) {
			return ErrCompletionBeforeCheckout
		}
	}

	b.status = target
	b.updatedAt = now
	return nil
}

// Cancel transitions to cancelled and, when a refund is requested, applies
// the refund policy and records both amounts on the booking.
func (b *Booking) Cancel(actor Actor, policy RefundPolicy, requestRefund bool, now time.Time) (RefundBreakdown, error) {
	if err := b.Transition(StatusCancelled, actor, now); err != nil {
		return RefundBreakdown{}, err
	}

	var breakdown RefundBreakdown
	if requestRefund {
		breakdown = policy.Refund(b.totalPriceCents, actor)
		refund := breakdown.RefundCents
		deduction := breakdown.DeductionCents
		b.refundAmountCents = &refund
		b.cancellationFeeCents = &deduction
	}

	return breakdown, nil
}
