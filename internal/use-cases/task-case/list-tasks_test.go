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

// Test HR gets an empty page without touching the store
func TestListTasks_HREmpty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	hr := newPrincipal("hr-1", entity.RoleHR, ptr("dept-a"))

	resp, err := env.service.ListTasks(ctx, hr, task_dto.TaskListFilter{})

	require.Nil(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, 0, resp.Meta.Total)
	env.repo.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTasks_UnknownRoleEmpty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	intern := newPrincipal("x-1", entity.Role("intern"), nil)

	resp, err := env.service.ListTasks(ctx, intern, task_dto.TaskListFilter{Page: 2, Limit: 5})

	require.Nil(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 2, resp.Meta.Page)
	env.repo.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTasks_TeamLeadScope(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	lead := newPrincipal("lead-a", entity.RoleTeamLead, ptr("dept-a"))
	status := entity.TaskInProgress
	expectedScope := entity.TaskScope{
		Kind:         entity.ScopeDepartmentOrAssigner,
		CompanyID:    "company-1",
		PrincipalID:  "lead-a",
		DepartmentID: ptr("dept-a"),
	}
	expectedFilter := entity.TaskListFilter{Status: &status, Page: 1, Limit: 10}

	env.repo.On("ListTasks", ctx, expectedScope, expectedFilter).
		Return([]entity.TaskEntity{*existingTask()}, int64(11), (*app_errors.AppError)(nil))

	resp, err := env.service.ListTasks(ctx, lead, task_dto.TaskListFilter{Status: ptr("in_progress"), Limit: 10})

	require.Nil(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "task-1", resp.Items[0].ID)
	assert.Equal(t, 11, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	env.repo.AssertExpectations(t)
}

func TestListTasks_EmployeeScope(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))
	env.repo.On("ListTasks", ctx, mock.MatchedBy(func(s entity.TaskScope) bool {
		return s.Kind == entity.ScopeAssignee && s.PrincipalID == "emp-1"
	}), mock.Anything).Return([]entity.TaskEntity{}, int64(0), (*app_errors.AppError)(nil))

	resp, err := env.service.ListTasks(ctx, employee, task_dto.TaskListFilter{})

	require.Nil(t, err)
	assert.Empty(t, resp.Items)
	env.repo.AssertExpectations(t)
}
