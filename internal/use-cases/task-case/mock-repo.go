package task_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/tx"
	settings_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/settings-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

// Mock TaskRepo for testing
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError {
	args := m.Called(ctx, t, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTaskByID(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, companyID, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTaskForUpdate(ctx context.Context, t tx.Tx, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, companyID, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, t tx.Tx, taskID string, patch *entity.TaskPatch) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, patch)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ApproveRedirection(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, companyID, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) SoftDeleteTask(ctx context.Context, companyID, taskID string) *app_errors.AppError {
	args := m.Called(ctx, companyID, taskID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListTasks(ctx context.Context, scope entity.TaskScope, filter entity.TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(int64), args.Get(2).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertComment(ctx context.Context, comment *entity.TaskCommentEntity) *app_errors.AppError {
	args := m.Called(ctx, comment)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListComments(ctx context.Context, taskID string) ([]entity.TaskCommentEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]entity.TaskCommentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetComment(ctx context.Context, taskID, commentID string) (*entity.TaskCommentEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID, commentID)
	return args.Get(0).(*entity.TaskCommentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) SoftDeleteComment(ctx context.Context, taskID, commentID string) *app_errors.AppError {
	args := m.Called(ctx, taskID, commentID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertChecklistItem(ctx context.Context, item *entity.TaskChecklistItemEntity) *app_errors.AppError {
	args := m.Called(ctx, item)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListChecklistItems(ctx context.Context, taskID string) ([]entity.TaskChecklistItemEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]entity.TaskChecklistItemEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) SetChecklistItemCompleted(ctx context.Context, taskID, itemID string, completed bool, by string) (*entity.TaskChecklistItemEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID, itemID, completed, by)
	return args.Get(0).(*entity.TaskChecklistItemEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListOverdueTasks(ctx context.Context, today time.Time, limit int) ([]entity.OverdueTask, *app_errors.AppError) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]entity.OverdueTask), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) MarkOverdueNotified(ctx context.Context, taskIDs []string, today time.Time) *app_errors.AppError {
	args := m.Called(ctx, taskIDs, today)
	return args.Get(0).(*app_errors.AppError)
}

// Mock IdentityRepo for testing
type MockIdentityRepo struct {
	mock.Mock
}

func (m *MockIdentityRepo) FindCompanyAdmin(ctx context.Context, authUserID string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, authUserID)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) FindStaffByEmail(ctx context.Context, email string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) FindMember(ctx context.Context, companyID, principalID string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, companyID, principalID)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) GetDepartment(ctx context.Context, departmentID string) (*entity.Department, *app_errors.AppError) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(*entity.Department), args.Get(1).(*app_errors.AppError)
}

// Mock SettingsService for testing
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetOrCreate(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(*entity.IntegrationSettingsEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSettingsService) GetSettings(ctx context.Context, principal *entity.Principal) (*settings_dto.SettingsResponse, *app_errors.AppError) {
	args := m.Called(ctx, principal)
	return args.Get(0).(*settings_dto.SettingsResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, principal *entity.Principal, req *settings_dto.UpdateSettingsRequest) (*settings_dto.SettingsResponse, *app_errors.AppError) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(*settings_dto.SettingsResponse), args.Get(1).(*app_errors.AppError)
}
