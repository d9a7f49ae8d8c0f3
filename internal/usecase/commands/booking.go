package commands

import (
	"context"
	"errors"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound        = errs.New("property not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrValidationFailed        = errs.New("validation failed")
	ErrNotAvailable            = errs.New("property is not available for the requested dates")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrStaleState              = errs.New("booking was modified concurrently")
	ErrForbidden               = errs.New("access denied")
	ErrNotifierFailed          = errs.New("lifecycle notification failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CancelResult struct {
	Booking *queries.BookingView
	// Refund is nil when the guest declined a refund.
	Refund *booking.RefundBreakdown
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	Transition(ctx context.Context, bookingID uuid.UUID, req reqdto.TransitionBookingRequest, actor booking.Actor) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, req reqdto.CancelBookingRequest, actor booking.Actor) (*CancelResult, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	refundPolicy   booking.RefundPolicy
	notifier       LifecycleNotifier
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	refundPolicy booking.RefundPolicy,
	notifier LifecycleNotifier,
	bookingQueries queries.BookingQueries,
	c clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		factory:        factory,
		refundPolicy:   refundPolicy,
		notifier:       notifier,
		bookingQueries: bookingQueries,
		clock:          c,
	}
}

// Create prices and persists a pending booking. The availability check and the
// insert run in one transaction serialized per property, so two overlapping
// requests cannot both succeed.
func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	snap, err := u.uow.CommandReads().PropertyByID(ctx, req.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	prop, err := property.NewProperty(snap.ID, snap.Title, snap.City, snap.PropertyType, snap.NightlyRateCents, snap.MaxGuests)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	contact := booking.NewContactInfo(req.ContactPhone, req.ContactEmail, req.SpecialRequests)
	entity, err := u.factory.CreateBooking(prop, userID, checkIn, checkOut, req.Guests, contact)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Bookings().Create(ctx, tx.DB(), entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return ErrNotAvailable
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		event := TransitionEvent{
			Booking:       entity,
			PropertyTitle: snap.Title,
			OldStatus:     "",
			NewStatus:     booking.StatusPending,
			ChangedBy:     userID,
			Reason:        "Booking created",
			OccurredAt:    entity.CreatedAt(),
		}
		if emitErr := u.notifier.Emit(ctx, tx, event); emitErr != nil {
			return errs.Mark(emitErr, ErrNotifierFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Transition applies a guarded status change. Persistence is a
// compare-and-swap on the status read in the same transaction, so a
// concurrent change surfaces as ErrStaleState rather than a lost update.
func (u *bookingUseCaseImpl) Transition(
	ctx context.Context,
	bookingID uuid.UUID,
	req reqdto.TransitionBookingRequest,
	actor booking.Actor,
) (*queries.BookingView, error) {
	target := booking.Status(req.Status)
	if !target.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown status %q", req.Status), ErrValidationFailed)
	}

	var propertyTitle string
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().BookingByID(ctx, bookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		entity := snap.ToDomain()
		previous := entity.Status()
		now := u.clock.Now()

		if transErr := entity.Transition(target, actor, now); transErr != nil {
			return mapDomainTransitionErr(transErr)
		}

		params := shared.UpdateStatusParams{
			ID:             bookingID,
			PreviousStatus: previous,
			NewStatus:      target,
			UpdatedAt:      now,
		}
		if casErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), params); casErr != nil {
			if infra.IsKind(casErr, infra.KindConflict) {
				return ErrStaleState
			}
			return errs.Mark(casErr, ErrDatabaseOperationFailed)
		}

		prop, propErr := tx.Reads().PropertyByID(ctx, entity.PropertyID())
		if propErr != nil {
			return errs.Mark(propErr, ErrDatabaseOperationFailed)
		}
		propertyTitle = prop.Title

		event := TransitionEvent{
			Booking:       entity,
			PropertyTitle: propertyTitle,
			OldStatus:     previous.String(),
			NewStatus:     target,
			ChangedBy:     actor.ID,
			Reason:        req.Reason,
			OccurredAt:    now,
		}
		if emitErr := u.notifier.Emit(ctx, tx, event); emitErr != nil {
			return errs.Mark(emitErr, ErrNotifierFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Cancel is a cancellation transition plus the refund policy. The refund
// amounts, the history entry and the notification all land in the same
// transaction as the status change.
func (u *bookingUseCaseImpl) Cancel(
	ctx context.Context,
	bookingID uuid.UUID,
	req reqdto.CancelBookingRequest,
	actor booking.Actor,
) (*CancelResult, error) {
	var breakdown booking.RefundBreakdown
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().BookingByID(ctx, bookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		entity := snap.ToDomain()
		previous := entity.Status()
		now := u.clock.Now()

		var cancelErr error
		breakdown, cancelErr = entity.Cancel(actor, u.refundPolicy, req.RequestRefund, now)
		if cancelErr != nil {
			return mapDomainTransitionErr(cancelErr)
		}

		params := shared.UpdateStatusParams{
			ID:                   bookingID,
			PreviousStatus:       previous,
			NewStatus:            booking.StatusCancelled,
			RefundAmountCents:    entity.RefundAmountCents(),
			CancellationFeeCents: entity.CancellationFeeCents(),
			UpdatedAt:            now,
		}
		if casErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), params); casErr != nil {
			if infra.IsKind(casErr, infra.KindConflict) {
				return ErrStaleState
			}
			return errs.Mark(casErr, ErrDatabaseOperationFailed)
		}

		prop, propErr := tx.Reads().PropertyByID(ctx, entity.PropertyID())
		if propErr != nil {
			return errs.Mark(propErr, ErrDatabaseOperationFailed)
		}

		event := TransitionEvent{
			Booking:           entity,
			PropertyTitle:     prop.Title,
			OldStatus:         previous.String(),
			NewStatus:         booking.StatusCancelled,
			ChangedBy:         actor.ID,
			Reason:            req.Reason,
			RefundAmountCents: entity.RefundAmountCents(),
			DeductionCents:    entity.CancellationFeeCents(),
			OccurredAt:        now,
		}
		if emitErr := u.notifier.Emit(ctx, tx, event); emitErr != nil {
			return errs.Mark(emitErr, ErrNotifierFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &CancelResult{Booking: view}
	if req.RequestRefund {
		result.Refund = &breakdown
	}
	return result, nil
}

func mapDomainTransitionErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotBookingOwner):
		return errs.Mark(err, ErrForbidden)
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrCompletionBeforeCheckout):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, ErrValidationFailed)
	}
}
