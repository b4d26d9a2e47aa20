package notification_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

// Mock NotificationRepo for testing
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Insert(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError {
	args := m.Called(ctx, n)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListForUser(ctx context.Context, userID string, page, limit int) ([]entity.NotificationEntity, int64, *app_errors.AppError) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(int64), args.Get(2).(*app_errors.AppError)
}

func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) *app_errors.AppError {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) SoftDelete(ctx context.Context, userID, notificationID string) *app_errors.AppError {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(*app_errors.AppError)
}
