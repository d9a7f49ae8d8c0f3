package commands

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// TransitionEvent describes one accepted status change about to be recorded.
// OldStatus is empty for the creation event.
type TransitionEvent struct {
	Booking           *booking.Booking
	PropertyTitle     string
	OldStatus         string
	NewStatus         booking.Status
	ChangedBy         uuid.UUID
	Reason            string
	RefundAmountCents *int64
	DeductionCents    *int64
	OccurredAt        time.Time
}

// LifecycleNotifier records the side effects of a status change: one
// notification for the booking owner and one history entry, both in the same
// transaction as the change itself. A failure here rolls the transition back.
type LifecycleNotifier interface {
	Emit(ctx context.Context, tx shared.Tx, event TransitionEvent) error
}

type notificationTemplate struct {
	notifType string
	title     string
	message   func(propertyTitle string, stay booking.StayPeriod) string
}

var statusTemplates = map[booking.Status]notificationTemplate{
	booking.StatusPending: {
		notifType: "booking_created",
		title:     "Booking received",
		message: func(title string, stay booking.StayPeriod) string {
			return fmt.Sprintf("Your booking at %s for %s is awaiting confirmation.", title, stay)
		},
	},
	booking.StatusConfirmed: {
		notifType: "booking_confirmed",
		title:     "Booking confirmed",
		message: func(title string, stay booking.StayPeriod) string {
			return fmt.Sprintf("Your booking at %s for %s has been confirmed.", title, stay)
		},
	},
	booking.StatusCancelled: {
		notifType: "booking_cancelled",
		title:     "Booking cancelled",
		message: func(title string, stay booking.StayPeriod) string {
			return fmt.Sprintf("Your booking at %s for %s has been cancelled.", title, stay)
		},
	},
	booking.StatusCompleted: {
		notifType: "booking_completed",
		title:     "Stay completed",
		message: func(title string, stay booking.StayPeriod) string {
			return fmt.Sprintf("Your stay at %s (%s) is complete. Thank you for staying with us.", title, stay)
		},
	},
	booking.StatusRefunded: {
		notifType: "booking_refunded",
		title:     "Refund processed",
		message: func(title string, stay booking.StayPeriod) string {
			return fmt.Sprintf("Your refund for the booking at %s (%s) has been processed.", title, stay)
		},
	},
}

// genericTemplate covers any status without a dedicated template so that an
// accepted transition always produces a notification.
var genericTemplate = notificationTemplate{
	notifType: "booking_updated",
	title:     "Booking updated",
	message: func(title string, stay booking.StayPeriod) string {
		return fmt.Sprintf("Your booking at %s for %s has been updated.", title, stay)
	},
}

type lifecycleNotifier struct{}

func NewLifecycleNotifier() LifecycleNotifier {
	return &lifecycleNotifier{}
}

func (n *lifecycleNotifier) Emit(ctx context.Context, tx shared.Tx, event TransitionEvent) error {
	tmpl, ok := statusTemplates[event.NewStatus]
	if !ok {
		tmpl = genericTemplate
	}

	b := event.Booking
	record := shared.NotificationRecord{
		UserID:    b.UserID(),
		BookingID: b.ID(),
		Type:      tmpl.notifType,
		Title:     tmpl.title,
		Message:   tmpl.message(event.PropertyTitle, b.Stay()),
		CreatedAt: event.OccurredAt,
	}
	if err := tx.Notifications().Create(ctx, tx.DB(), record); err != nil {
		return errs.Wrap(err, "failed to create lifecycle notification")
	}

	entry := shared.HistoryEntry{
		BookingID:         b.ID(),
		OldStatus:         event.OldStatus,
		NewStatus:         event.NewStatus.String(),
		ChangedBy:         event.ChangedBy,
		Reason:            event.Reason,
		RefundAmountCents: event.RefundAmountCents,
		DeductionCents:    event.DeductionCents,
		CreatedAt:         event.OccurredAt,
	}
	if err := tx.History().Append(ctx, tx.DB(), entry); err != nil {
		return errs.Wrap(err, "failed to append status history")
	}

	return nil
}
