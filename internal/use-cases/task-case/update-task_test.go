package task_case

import (
	"context"
	"testing"
	"time"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingTask() *entity.TaskEntity {
	return &entity.TaskEntity{
		ID:                   "task-1",
		CompanyID:            "company-1",
		Title:                "Quarterly report",
		AssignedTo:           "emp-1",
		AssignedBy:           "mgr-1",
		Status:               entity.TaskPending,
		Priority:             entity.PriorityMedium,
		DueDate:              time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		AssignedDepartmentID: ptr("dept-a"),
		Tags:                 []string{},
		Version:              3,
		CreatedAt:            testNow.Add(-48 * time.Hour),
		UpdatedAt:            testNow.Add(-48 * time.Hour),
	}
}

// Test manager completes own task: completed_date stamped, only the assignee is notified
func TestUpdateTask_CompleteStampsCompletedDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))
	current := existingTask()
	today := entity.DateOnly(testNow)

	updated := existingTask()
	updated.Status = entity.TaskCompleted
	updated.CompletedDate = &today
	updated.Version = 4

	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(current, (*app_errors.AppError)(nil))
	env.repo.On("UpdateTask", ctx, env.tx, "task-1", mock.MatchedBy(func(p *entity.TaskPatch) bool {
		return p.Status != nil && *p.Status == entity.TaskCompleted &&
			p.SetCompletedDate && p.CompletedDate != nil && p.CompletedDate.Equal(today)
	})).Return(updated, (*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := env.service.UpdateTask(ctx, manager, "task-1", &task_dto.UpdateTaskRequest{Status: ptr("completed")})

	require.Nil(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, ptr("2026-10-16"), resp.CompletedDate)
	assert.Equal(t, 4, resp.Version)

	require.Len(t, env.queue.Enqueued, 1)
	assert.Equal(t, "emp-1", env.queue.Enqueued[0].RecipientID)
	assert.Equal(t, entity.NotificationStatusChanged, env.queue.Enqueued[0].Kind)
	assert.Equal(t, "Your Task Status Changed", env.queue.Enqueued[0].Title)
	assert.Equal(t, `Task "Quarterly report" status changed to Completed by Name mgr-1`, env.queue.Enqueued[0].Message)

	env.assertExpectations(t)
}

// Test reopening a completed task clears completed_date in the same update
func TestUpdateTask_ReopenClearsCompletedDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))
	completedAt := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	current := existingTask()
	current.Status = entity.TaskCompleted
	current.CompletedDate = &completedAt

	updated := existingTask()
	updated.Status = entity.TaskInProgress

	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(current, (*app_errors.AppError)(nil))
	env.repo.On("UpdateTask", ctx, env.tx, "task-1", mock.MatchedBy(func(p *entity.TaskPatch) bool {
		return p.SetCompletedDate && p.CompletedDate == nil
	})).Return(updated, (*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := env.service.UpdateTask(ctx, employee, "task-1", &task_dto.UpdateTaskRequest{Status: ptr("in_progress")})

	require.Nil(t, err)
	assert.Nil(t, resp.CompletedDate)
	assert.Equal(t, []string{"mgr-1"}, env.queue.Recipients(string(entity.NotificationStatusChanged)))
	assert.Equal(t, "Task Status Updated", env.queue.Enqueued[0].Title)
	assert.Equal(t, `Task "Quarterly report" status changed from Completed to In Progress by Name emp-1`, env.queue.Enqueued[0].Message)
}

// Test both gates are evaluated and both reasons reported
func TestUpdateTask_BothGatesFail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	other := newPrincipal("emp-9", entity.RoleEmployee, ptr("dept-a"))
	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))

	_, err := env.service.UpdateTask(ctx, other, "task-1", &task_dto.UpdateTaskRequest{DueDate: ptr("2026-10-25")})

	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, "Can only update tasks assigned to you; Role 'employee' cannot edit timeline/priority", err.Reason)
	env.repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	env.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateTask_TimelineEditingDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx, func(s *entity.IntegrationSettingsEntity) { s.AllowTimelinePriorityEditing = false })
	env.expectTx(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))
	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))

	_, err := env.service.UpdateTask(ctx, manager, "task-1", &task_dto.UpdateTaskRequest{Priority: ptr("urgent")})

	require.NotNil(t, err)
	assert.Equal(t, "Timeline and priority editing disabled by admin", err.Reason)
}

// Test deadline and priority changes notify both sides except the actor
func TestUpdateTask_TimelineAndPriorityNotifications(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	admin := newPrincipal("admin-1", entity.RoleAdmin, nil)
	newDue := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)

	updated := existingTask()
	updated.DueDate = newDue
	updated.Priority = entity.PriorityHigh

	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))
	env.repo.On("UpdateTask", ctx, env.tx, "task-1", mock.MatchedBy(func(p *entity.TaskPatch) bool {
		return p.DueDate != nil && p.DueDate.Equal(newDue) && p.Priority != nil && *p.Priority == entity.PriorityHigh && !p.SetCompletedDate
	})).Return(updated, (*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	_, err := env.service.UpdateTask(ctx, admin, "task-1", &task_dto.UpdateTaskRequest{
		DueDate:  ptr("2026-10-25"),
		Priority: ptr("high"),
	})

	require.Nil(t, err)
	assert.Equal(t, []string{"mgr-1", "emp-1"}, env.queue.Recipients(string(entity.NotificationPriorityUpdated)))
	assert.Equal(t, []string{"mgr-1", "emp-1"}, env.queue.Recipients(string(entity.NotificationTimelineUpdated)))
	assert.Empty(t, env.queue.Recipients(string(entity.NotificationStatusChanged)))

	var deadline string
	for _, p := range env.queue.Enqueued {
		if p.Kind == entity.NotificationTimelineUpdated {
			deadline = p.Message
			break
		}
	}
	assert.Equal(t, `Task "Quarterly report" deadline changed from 2026-10-20 to 2026-10-25 by Name admin-1`, deadline)
}

func TestUpdateTask_VersionMismatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))
	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))

	_, err := env.service.UpdateTask(ctx, employee, "task-1", &task_dto.UpdateTaskRequest{
		ProgressPercentage: ptr(50),
		ExpectedVersion:    ptr(2),
	})

	require.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, "conflict.task_version_mismatch", err.MessageKey)
	env.repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_EmptyPatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))

	_, err := env.service.UpdateTask(ctx, employee, "task-1", &task_dto.UpdateTaskRequest{ExpectedVersion: ptr(3)})

	require.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "No fields to update", err.Reason)
	env.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestUpdateTask_DueDateMovedIntoPast(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	admin := newPrincipal("admin-1", entity.RoleAdmin, nil)
	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))

	_, err := env.service.UpdateTask(ctx, admin, "task-1", &task_dto.UpdateTaskRequest{DueDate: ptr("2026-10-01")})

	require.NotNil(t, err)
	assert.Equal(t, "Due date cannot be in the past", err.Reason)
}

func TestUpdateTask_NotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)
	env.expectTx(ctx)

	admin := newPrincipal("admin-1", entity.RoleAdmin, nil)
	env.repo.On("GetTaskForUpdate", ctx, env.tx, "company-1", "missing").Return((*entity.TaskEntity)(nil), app_errors.NewNotFound("task.not_found"))

	_, err := env.service.UpdateTask(ctx, admin, "missing", &task_dto.UpdateTaskRequest{Title: ptr("x")})

	require.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
}
