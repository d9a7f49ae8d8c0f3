//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra/db"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/shared"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	records []shared.NotificationRecord
	err     error
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, record shared.NotificationRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

type fakeHistoryRepo struct {
	entries []shared.HistoryEntry
	err     error
}

func (f *fakeHistoryRepo) Append(_ context.Context, _ db.DBTX, entry shared.HistoryEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fakeTx struct {
	notifications *fakeNotificationRepo
	history       *fakeHistoryRepo
}

func (f *fakeTx) Bookings() shared.BookingRepository           { return nil }
func (f *fakeTx) History() shared.HistoryRepository            { return f.history }
func (f *fakeTx) Notifications() shared.NotificationRepository { return f.notifications }
func (f *fakeTx) Reads() shared.CommandReads                   { return nil }
func (f *fakeTx) DB() db.DBTX                                  { return nil }

func newFakeTx() *fakeTx {
	return &fakeTx{
		notifications: &fakeNotificationRepo{},
		history:       &fakeHistoryRepo{},
	}
}

func makeEvent(status booking.Status, oldStatus string) (commands.TransitionEvent, *booking.Booking) {
	entity := builder.NewBookingBuilder().WithStatus(status.String()).BuildDomain()
	return commands.TransitionEvent{
		Booking:       entity,
		PropertyTitle: "Harborview Loft",
		OldStatus:     oldStatus,
		NewStatus:     status,
		ChangedBy:     entity.UserID(),
		Reason:        "test",
		OccurredAt:    time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}, entity
}

func TestLifecycleNotifierEmit(t *testing.T) {
	notifier := commands.NewLifecycleNotifier()
	ctx := context.Background()

	t.Run("writes one notification and one history entry", func(t *testing.T) {
		tx := newFakeTx()
		event, entity := makeEvent(booking.StatusConfirmed, "pending")

		require.NoError(t, notifier.Emit(ctx, tx, event))

		require.Len(t, tx.notifications.records, 1)
		record := tx.notifications.records[0]
		assert.Equal(t, entity.UserID(), record.UserID)
		assert.Equal(t, entity.ID(), record.BookingID)
		assert.Equal(t, "booking_confirmed", record.Type)
		assert.Equal(t, "Booking confirmed", record.Title)
		assert.Contains(t, record.Message, "Harborview Loft")

		require.Len(t, tx.history.entries, 1)
		entry := tx.history.entries[0]
		assert.Equal(t, entity.ID(), entry.BookingID)
		assert.Equal(t, "pending", entry.OldStatus)
		assert.Equal(t, "confirmed", entry.NewStatus)
		assert.Equal(t, event.OccurredAt, entry.CreatedAt)
	})

	t.Run("selects the template for each status", func(t *testing.T) {
		wantTypes := map[booking.Status]string{
			booking.StatusPending:   "booking_created",
			booking.StatusConfirmed: "booking_confirmed",
			booking.StatusCancelled: "booking_cancelled",
			booking.StatusCompleted: "booking_completed",
			booking.StatusRefunded:  "booking_refunded",
		}

		for status, wantType := range wantTypes {
			tx := newFakeTx()
			event, _ := makeEvent(status, "pending")

			require.NoError(t, notifier.Emit(ctx, tx, event))
			require.Len(t, tx.notifications.records, 1, "status %s", status)
			assert.Equal(t, wantType, tx.notifications.records[0].Type, "status %s", status)
		}
	})

	t.Run("unknown status falls back to the generic template", func(t *testing.T) {
		tx := newFakeTx()
		event, _ := makeEvent(booking.Status("archived"), "completed")

		require.NoError(t, notifier.Emit(ctx, tx, event))
		require.Len(t, tx.notifications.records, 1)
		assert.Equal(t, "booking_updated", tx.notifications.records[0].Type)
		assert.Equal(t, "Booking updated", tx.notifications.records[0].Title)
	})

	t.Run("carries refund amounts into the history entry", func(t *testing.T) {
		tx := newFakeTx()
		event, _ := makeEvent(booking.StatusCancelled, "confirmed")
		refund := int64(980000)
		deduction := int64(20000)
		event.RefundAmountCents = &refund
		event.DeductionCents = &deduction

		require.NoError(t, notifier.Emit(ctx, tx, event))

		require.Len(t, tx.history.entries, 1)
		entry := tx.history.entries[0]
		require.NotNil(t, entry.RefundAmountCents)
		assert.Equal(t, int64(980000), *entry.RefundAmountCents)
		require.NotNil(t, entry.DeductionCents)
		assert.Equal(t, int64(20000), *entry.DeductionCents)
	})

	t.Run("notification failure aborts before history is written", func(t *testing.T) {
		tx := newFakeTx()
		tx.notifications.err = errors.New("insert failed")
		event, _ := makeEvent(booking.StatusConfirmed, "pending")

		err := notifier.Emit(ctx, tx, event)
		require.Error(t, err)
		assert.Empty(t, tx.history.entries)
	})

	t.Run("history failure propagates", func(t *testing.T) {
		tx := newFakeTx()
		tx.history.err = errors.New("insert failed")
		event, _ := makeEvent(booking.StatusConfirmed, "pending")

		err := notifier.Emit(ctx, tx, event)
		require.Error(t, err)
		assert.Len(t, tx.notifications.records, 1)
	})

	t.Run("creation event has empty old status", func(t *testing.T) {
		tx := newFakeTx()
		event, _ := makeEvent(booking.StatusPending, "")

		require.NoError(t, notifier.Emit(ctx, tx, event))
		require.Len(t, tx.history.entries, 1)
		assert.Equal(t, "", tx.history.entries[0].OldStatus)
		assert.Equal(t, "booking_created", tx.notifications.records[0].Type)
	})

	t.Run("uses a changed by distinct from the owner for admin actions", func(t *testing.T) {
		tx := newFakeTx()
		event, entity := makeEvent(booking.StatusCancelled, "confirmed")
		adminID := uuid.New()
		event.ChangedBy = adminID

		require.NoError(t, notifier.Emit(ctx, tx, event))
		require.Len(t, tx.history.entries, 1)
		assert.Equal(t, adminID, tx.history.entries[0].ChangedBy)
		// The notification still goes to the booking owner.
		assert.Equal(t, entity.UserID(), tx.notifications.records[0].UserID)
	})
}
