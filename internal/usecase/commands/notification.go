package commands

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

// NotificationWriteRepository covers the mutations a user can apply to their
// notification feed. Ownership is enforced in SQL by scoping on user_id.
type NotificationWriteRepository interface {
	MarkRead(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, actor booking.Actor) error
}

type notificationUseCaseImpl struct {
	uow  shared.UnitOfWork
	repo NotificationWriteRepository
}

func NewNotificationUseCase(uow shared.UnitOfWork, repo NotificationWriteRepository) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow, repo: repo}
}

func (u *notificationUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.repo.MarkRead(ctx, dbtx, id, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *notificationUseCaseImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var updated int64
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		n, err := u.repo.MarkAllRead(ctx, dbtx, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = n
		return nil
	})
	return updated, err
}

// Delete removes a notification outright. Only admins may do this; guests
// dismiss by marking as read.
func (u *notificationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actor booking.Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.repo.Delete(ctx, dbtx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
