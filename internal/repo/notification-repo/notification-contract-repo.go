package notification_repo

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type NotificationRepoContract interface {
	Insert(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError
	ListForUser(ctx context.Context, userID string, page, limit int) ([]entity.NotificationEntity, int64, *app_errors.AppError)
	CountUnread(ctx context.Context, userID string) (int64, *app_errors.AppError)
	MarkRead(ctx context.Context, userID, notificationID string) *app_errors.AppError
	MarkAllRead(ctx context.Context, userID string) (int64, *app_errors.AppError)
	SoftDelete(ctx context.Context, userID, notificationID string) *app_errors.AppError
}
