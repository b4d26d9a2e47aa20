package task_case

import (
	"context"
	"testing"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddChecklistItem_OrderIndexFromStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))
	env.repo.On("GetTaskByID", ctx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))
	env.repo.On("InsertChecklistItem", ctx, mock.AnythingOfType("*entity.TaskChecklistItemEntity")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.TaskChecklistItemEntity).OrderIndex = 2 }).
		Return((*app_errors.AppError)(nil))

	resp, err := env.service.AddChecklistItem(ctx, employee, "task-1", &task_dto.AddChecklistItemRequest{Title: "Collect numbers"})

	require.Nil(t, err)
	assert.Equal(t, 2, resp.OrderIndex)
	assert.False(t, resp.IsCompleted)
}

func TestAddChecklistItem_HRDenied(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	hr := newPrincipal("hr-1", entity.RoleHR, ptr("dept-a"))
	env.repo.On("GetTaskByID", ctx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))

	_, err := env.service.AddChecklistItem(ctx, hr, "task-1", &task_dto.AddChecklistItemRequest{Title: "x"})

	require.NotNil(t, err)
	assert.Equal(t, "HR cannot update tasks", err.Reason)
}

func TestToggleChecklistItem_Complete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))
	env.repo.On("GetTaskByID", ctx, "company-1", "task-1").Return(existingTask(), (*app_errors.AppError)(nil))
	env.repo.On("SetChecklistItemCompleted", ctx, "task-1", "i-1", true, "emp-1").Return(&entity.TaskChecklistItemEntity{
		ID:          "i-1",
		TaskID:      "task-1",
		Title:       "Draft",
		IsCompleted: true,
		CompletedBy: ptr("emp-1"),
		CompletedAt: &testNow,
	}, (*app_errors.AppError)(nil))

	resp, err := env.service.ToggleChecklistItem(ctx, employee, "task-1", "i-1", &task_dto.ToggleChecklistItemRequest{IsCompleted: ptr(true)})

	require.Nil(t, err)
	assert.True(t, resp.IsCompleted)
	assert.Equal(t, ptr("emp-1"), resp.CompletedBy)
	env.repo.AssertExpectations(t)
}
