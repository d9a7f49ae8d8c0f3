package queries

import (
	"context"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueries struct {
	notifications NotificationReadStore
}

func NewNotificationQueries(notifications NotificationReadStore) NotificationQueries {
	return &notificationQueries{notifications: notifications}
}

// ListByUser returns the user's notifications newest first.
func (q *notificationQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]NotificationView, error) {
	views, err := q.notifications.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *notificationQueries) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := q.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, ErrQueryFailed)
	}
	return count, nil
}
