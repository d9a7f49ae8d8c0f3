package writerepo

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationSQL = `
INSERT INTO notifications (
	id, user_id, booking_id, type, title, message, is_read, created_at
) VALUES (
	gen_random_uuid(), $1, $2, $3, $4, $5, FALSE, $6
)
`

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, record shared.NotificationRecord) error {
	_, err := dbtx.Exec(ctx, insertNotificationSQL,
		record.UserID,
		record.BookingID,
		record.Type,
		record.Title,
		record.Message,
		pgconv.TimestamptzToPgtype(record.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

const markReadSQL = `
UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2
`

// MarkRead scopes on user_id so a guest cannot touch another user's feed.
func (r *NotificationRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification as read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

const markAllReadSQL = `
UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE
`

func (r *NotificationRepository) MarkAllRead(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications as read", err)
	}
	return tag.RowsAffected(), nil
}

const deleteNotificationSQL = `
DELETE FROM notifications WHERE id = $1
`

func (r *NotificationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteNotificationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
