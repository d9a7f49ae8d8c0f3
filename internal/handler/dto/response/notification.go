package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotificationList(views []queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(views))
	for i, v := range views {
		var resp NotificationResponse
		_ = copier.Copy(&resp, &v)
		res[i] = &resp
	}
	return res
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type MarkAllReadResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}
