package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const findNotificationsByUserSQL = `
SELECT id, user_id, booking_id, type, title, message, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
`

func (r *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, findNotificationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications", err)
	}
	defer rows.Close()

	views := []queries.NotificationView{}
	for rows.Next() {
		var (
			view      queries.NotificationView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.BookingID,
			&view.Type, &view.Title, &view.Message,
			&view.IsRead, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return views, nil
}

const countUnreadSQL = `
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE
`

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countUnreadSQL, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
