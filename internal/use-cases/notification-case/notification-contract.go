package notification_case

import (
	"context"

	notification_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/notification-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type NotificationServiceContract interface {
	ListNotifications(ctx context.Context, principal *entity.Principal, filter notification_dto.NotificationListFilter) (*notification_dto.NotificationListResponse, *app_errors.AppError)
	MarkRead(ctx context.Context, principal *entity.Principal, notificationID string) *app_errors.AppError
	MarkAllRead(ctx context.Context, principal *entity.Principal) (*notification_dto.MarkAllReadResponse, *app_errors.AppError)
	DeleteNotification(ctx context.Context, principal *entity.Principal, notificationID string) *app_errors.AppError
}
