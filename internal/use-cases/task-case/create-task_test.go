package task_case

import (
	"context"
	"testing"
	"time"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	use_cases "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	repo      *MockTaskRepo
	identity  *MockIdentityRepo
	settings  *MockSettingsService
	txManager *MockTxManager
	tx        *MockTx
	queue     *use_cases.MockTaskQueue
	service   *TaskService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:      new(MockTaskRepo),
		identity:  new(MockIdentityRepo),
		settings:  new(MockSettingsService),
		txManager: new(MockTxManager),
		tx:        new(MockTx),
		queue:     new(use_cases.MockTaskQueue),
	}
	env.queue.On("EnqueueTaskNotification", mock.Anything).Return(nil).Maybe()
	env.service = &TaskService{
		repo:      env.repo,
		identity:  env.identity,
		settings:  env.settings,
		txManager: env.txManager,
		queue:     env.queue,
		now:       func() time.Time { return testNow },
	}
	return env
}

func (env *testEnv) withSettings(ctx context.Context, mutate ...func(*entity.IntegrationSettingsEntity)) {
	settings := entity.DefaultSettingsDefaults().ForCompany("settings-1", "company-1", testNow)
	for _, m := range mutate {
		m(settings)
	}
	env.settings.On("GetOrCreate", ctx, "company-1").Return(settings, (*app_errors.AppError)(nil))
}

func (env *testEnv) expectTx(ctx context.Context) {
	env.txManager.On("Begin", ctx).Return(env.tx, (*app_errors.AppError)(nil))
	env.tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
}

func (env *testEnv) assertExpectations(t *testing.T) {
	env.repo.AssertExpectations(t)
	env.identity.AssertExpectations(t)
	env.settings.AssertExpectations(t)
	env.txManager.AssertExpectations(t)
	env.tx.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}

func newPrincipal(id string, role entity.Role, departmentID *string) *entity.Principal {
	return &entity.Principal{
		ID:           id,
		Name:         "Name " + id,
		Email:        id + "@example.com",
		Role:         role,
		CompanyID:    "company-1",
		DepartmentID: departmentID,
		Source:       entity.SourceStaff,
	}
}

// Test admin assigns an employee of the same department
func TestCreateTask_Success(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	admin := newPrincipal("admin-1", entity.RoleAdmin, ptr("dept-a"))
	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))

	env.identity.On("FindMember", ctx, "company-1", "emp-1").Return(employee, (*app_errors.AppError)(nil))
	env.expectTx(ctx)

	var inserted *entity.TaskEntity
	env.repo.On("InsertTask", ctx, env.tx, mock.AnythingOfType("*entity.TaskEntity")).
		Run(func(args mock.Arguments) { inserted = args.Get(2).(*entity.TaskEntity) }).
		Return((*app_errors.AppError)(nil)).Once()
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	req := &task_dto.CreateTaskRequest{
		Title:       "Quarterly report",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-17",
	}

	resp, err := env.service.CreateTask(ctx, admin, req)

	require.Nil(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "pending", resp.Tasks[0].Status)
	assert.Equal(t, 0, resp.Tasks[0].ProgressPercentage)
	assert.Equal(t, "medium", resp.Tasks[0].Priority)
	assert.Equal(t, "2026-10-17", resp.Tasks[0].DueDate)

	require.NotNil(t, inserted)
	assert.Equal(t, "emp-1", inserted.AssignedTo)
	assert.Equal(t, "admin-1", inserted.AssignedBy)
	assert.Equal(t, ptr("dept-a"), inserted.AssignedDepartmentID)
	assert.False(t, inserted.IsCrossDepartment)
	assert.False(t, inserted.IsRedirectedToTeamLead)

	assert.Equal(t, []string{"emp-1", "admin-1"}, env.queue.Recipients(string(entity.NotificationTaskAssigned)))
	assert.Equal(t, `Name admin-1 assigned you the task "Quarterly report"`, env.queue.Enqueued[0].Message)
	assert.Equal(t, `You assigned the task "Quarterly report" to Name emp-1`, env.queue.Enqueued[1].Message)

	env.assertExpectations(t)
}

// Test employee creation gated by settings, no task row written
func TestCreateTask_EmployeeCreationDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx, func(s *entity.IntegrationSettingsEntity) { s.AllowEmployeeTaskCreation = false })

	employee := newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a"))

	resp, err := env.service.CreateTask(ctx, employee, &task_dto.CreateTaskRequest{
		Title:       "Anything",
		AssigneeIDs: []string{"emp-2"},
		DueDate:     "2026-10-17",
	})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, "Employee task creation disabled by admin", err.Reason)

	env.repo.AssertNotCalled(t, "InsertTask", mock.Anything, mock.Anything, mock.Anything)
	env.txManager.AssertNotCalled(t, "Begin", mock.Anything)
	assert.Empty(t, env.queue.Enqueued)
}

func TestCreateTask_HRDenied(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	hr := newPrincipal("hr-1", entity.RoleHR, ptr("dept-a"))

	_, err := env.service.CreateTask(ctx, hr, &task_dto.CreateTaskRequest{
		Title:       "Anything",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-17",
	})

	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, "HR cannot create tasks", err.Reason)
}

func TestCreateTask_MultipleAssigneesNotAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))

	_, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Anything",
		AssigneeIDs: []string{"emp-1", "emp-2"},
		DueDate:     "2026-10-17",
	})

	require.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "Multiple assignees not allowed", err.Reason)
	env.identity.AssertNotCalled(t, "FindMember", mock.Anything, mock.Anything, mock.Anything)
}

// Test one row per assignee inside a single transaction
func TestCreateTask_MultipleAssigneesAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx, func(s *entity.IntegrationSettingsEntity) { s.AllowMultiTaskAssignment = true })

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))
	env.identity.On("FindMember", ctx, "company-1", "emp-1").Return(newPrincipal("emp-1", entity.RoleEmployee, ptr("dept-a")), (*app_errors.AppError)(nil))
	env.identity.On("FindMember", ctx, "company-1", "emp-2").Return(newPrincipal("emp-2", entity.RoleEmployee, ptr("dept-a")), (*app_errors.AppError)(nil))
	env.expectTx(ctx)
	env.repo.On("InsertTask", ctx, env.tx, mock.AnythingOfType("*entity.TaskEntity")).Return((*app_errors.AppError)(nil)).Twice()
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil)).Once()

	resp, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Onboarding",
		AssigneeIDs: []string{"emp-1", "emp-2", "emp-1"},
		DueDate:     "2026-10-20",
		Priority:    ptr("high"),
	})

	require.Nil(t, err)
	require.Len(t, resp.Tasks, 2)
	assert.NotEqual(t, resp.Tasks[0].ID, resp.Tasks[1].ID)
	assert.Equal(t, "high", resp.Tasks[1].Priority)
	assert.Equal(t, []string{"emp-1", "mgr-1", "emp-2", "mgr-1"}, env.queue.Recipients(string(entity.NotificationTaskAssigned)))

	env.assertExpectations(t)
}

func TestCreateTask_DueDateInPast(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, nil)

	_, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Late",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-15",
	})

	require.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "Due date cannot be in the past", err.Reason)
}

func TestCreateTask_DueTodayAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, nil)
	env.identity.On("FindMember", ctx, "company-1", "emp-1").Return(newPrincipal("emp-1", entity.RoleEmployee, nil), (*app_errors.AppError)(nil))
	env.expectTx(ctx)
	env.repo.On("InsertTask", ctx, env.tx, mock.Anything).Return((*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Today",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-16",
	})

	require.Nil(t, err)
	assert.False(t, resp.Tasks[0].IsOverdue)
}

func TestCreateTask_StartAfterDue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, nil)

	_, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Backwards",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-18",
		StartDate:   ptr("2026-10-20"),
	})

	require.NotNil(t, err)
	assert.Equal(t, "Start date cannot be after due date", err.Reason)
}

func TestCreateTask_AssigneeNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, nil)
	env.identity.On("FindMember", ctx, "company-1", "ghost").Return((*entity.Principal)(nil), (*app_errors.AppError)(nil))

	_, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Nobody",
		AssigneeIDs: []string{"ghost"},
		DueDate:     "2026-10-18",
	})

	require.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "task.assignee_not_found", err.MessageKey)
	env.txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateTask_TeamLeadCrossDepartmentDenied(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx, func(s *entity.IntegrationSettingsEntity) { s.AllowIntraDepartmentAssignments = false })

	lead := newPrincipal("lead-a", entity.RoleTeamLead, ptr("dept-a"))
	env.identity.On("FindMember", ctx, "company-1", "emp-b").Return(newPrincipal("emp-b", entity.RoleEmployee, ptr("dept-b")), (*app_errors.AppError)(nil))

	_, err := env.service.CreateTask(ctx, lead, &task_dto.CreateTaskRequest{
		Title:       "Across",
		AssigneeIDs: []string{"emp-b"},
		DueDate:     "2026-10-18",
	})

	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, "Cross-department assignment not allowed", err.Reason)
}

// Test cross-department assignment routed to the department head
func TestCreateTask_RedirectedToTeamLead(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))
	env.identity.On("FindMember", ctx, "company-1", "emp-b").Return(newPrincipal("emp-b", entity.RoleEmployee, ptr("dept-b")), (*app_errors.AppError)(nil))
	env.identity.On("GetDepartment", ctx, "dept-b").Return(&entity.Department{ID: "dept-b", CompanyID: "company-1", Name: "Ops", HeadID: ptr("lead-b")}, (*app_errors.AppError)(nil))
	env.expectTx(ctx)

	var inserted *entity.TaskEntity
	env.repo.On("InsertTask", ctx, env.tx, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(2).(*entity.TaskEntity) }).
		Return((*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Across",
		AssigneeIDs: []string{"emp-b"},
		DueDate:     "2026-10-18",
	})

	require.Nil(t, err)
	require.NotNil(t, inserted)
	assert.True(t, inserted.IsCrossDepartment)
	assert.True(t, inserted.IsRedirectedToTeamLead)
	assert.True(t, inserted.TeamLeadApprovalPending)
	assert.Equal(t, ptr("lead-b"), inserted.TeamLeadID)
	assert.True(t, resp.Tasks[0].TeamLeadApprovalPending)
	assert.Equal(t, []string{"emp-b", "mgr-1", "lead-b"}, env.queue.Recipients(string(entity.NotificationTaskAssigned)))

	env.assertExpectations(t)
}

func TestCreateTask_DirectPolicySkipsDepartmentLookup(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx, func(s *entity.IntegrationSettingsEntity) { s.CrossDepartmentRedirection = entity.RedirectionDirect })

	manager := newPrincipal("mgr-1", entity.RoleManager, ptr("dept-a"))
	env.identity.On("FindMember", ctx, "company-1", "emp-b").Return(newPrincipal("emp-b", entity.RoleEmployee, ptr("dept-b")), (*app_errors.AppError)(nil))
	env.expectTx(ctx)
	env.repo.On("InsertTask", ctx, env.tx, mock.Anything).Return((*app_errors.AppError)(nil))
	env.tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Across",
		AssigneeIDs: []string{"emp-b"},
		DueDate:     "2026-10-18",
	})

	require.Nil(t, err)
	assert.True(t, resp.Tasks[0].IsCrossDepartment)
	assert.False(t, resp.Tasks[0].IsRedirectedToTeamLead)
	env.identity.AssertNotCalled(t, "GetDepartment", mock.Anything, mock.Anything)
}

// Test a failed insert rolls back and emits nothing
func TestCreateTask_InsertFailsNoNotification(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.withSettings(ctx)

	manager := newPrincipal("mgr-1", entity.RoleManager, nil)
	env.identity.On("FindMember", ctx, "company-1", "emp-1").Return(newPrincipal("emp-1", entity.RoleEmployee, nil), (*app_errors.AppError)(nil))
	env.expectTx(ctx)
	env.repo.On("InsertTask", ctx, env.tx, mock.Anything).Return(app_errors.NewInternal(assert.AnError))

	_, err := env.service.CreateTask(ctx, manager, &task_dto.CreateTaskRequest{
		Title:       "Boom",
		AssigneeIDs: []string{"emp-1"},
		DueDate:     "2026-10-18",
	})

	require.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	env.tx.AssertNotCalled(t, "Commit", mock.Anything)
	env.tx.AssertCalled(t, "Rollback", ctx)
	assert.Empty(t, env.queue.Enqueued)
}
