package notification_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/dtos"
	notification_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/notification-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	notification_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/notification-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// NotificationService arbeitet immer nur auf den Benachrichtigungen des angemeldeten Principals.
type NotificationService struct {
	repo notification_repo.NotificationRepoContract
}

func NewNotificationService(db *pgxpool.Pool) NotificationServiceContract {
	return &NotificationService{
		repo: notification_repo.NewNotificationRepo(db),
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, principal *entity.Principal, filter notification_dto.NotificationListFilter) (*notification_dto.NotificationListResponse, *app_errors.AppError) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	rows, total, err := s.repo.ListForUser(ctx, principal.ID, page, limit)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	items := make([]notification_dto.NotificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, notification_dto.ToNotificationResponse(&rows[i]))
	}

	return &notification_dto.NotificationListResponse{
		Items:       items,
		UnreadCount: unread,
		Meta:        dtos.NewPaginationMeta(page, limit, total),
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, principal *entity.Principal, notificationID string) *app_errors.AppError {
	return s.repo.MarkRead(ctx, principal.ID, notificationID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, principal *entity.Principal) (*notification_dto.MarkAllReadResponse, *app_errors.AppError) {
	updated, err := s.repo.MarkAllRead(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return &notification_dto.MarkAllReadResponse{Updated: updated}, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, principal *entity.Principal, notificationID string) *app_errors.AppError {
	return s.repo.SoftDelete(ctx, principal.ID, notificationID)
}
