package task_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/dtos"
	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/permission"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/queue"
	identity_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/identity-repo"
	task_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/task-repo"
	settings_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/settings-case"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type TaskService struct {
	repo      task_repo.TaskRepoContract
	identity  identity_repo.IdentityRepoContract
	settings  settings_case.SettingsServiceContract
	txManager tx.TxManager
	queue     queue.TaskQueueClient
	now       func() time.Time
}

func NewTaskService(db *pgxpool.Pool, settings settings_case.SettingsServiceContract, taskQueue queue.TaskQueueClient) TaskServiceContract {
	return &TaskService{
		repo:      task_repo.NewTaskRepo(db),
		identity:  identity_repo.NewIdentityRepo(db),
		settings:  settings,
		txManager: tx.NewPgxTxManager(db),
		queue:     taskQueue,
		now:       time.Now,
	}
}

func (s *TaskService) today() time.Time {
	return entity.DateOnly(s.now())
}

func (s *TaskService) validatorFor(ctx context.Context, principal *entity.Principal) (*permission.TaskValidator, *entity.IntegrationSettingsEntity, *app_errors.AppError) {
	settings, err := s.settings.GetOrCreate(ctx, principal.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return permission.NewTaskValidator(principal, settings), settings, nil
}

type plannedTask struct {
	task     *entity.TaskEntity
	assignee *entity.Principal
}

// CreateTask legt pro Empfänger eine Aufgabe an. Alle Zeilen entstehen in einer Transaktion,
// Benachrichtigungen werden erst nach dem Commit eingereiht.
func (s *TaskService) CreateTask(ctx context.Context, principal *entity.Principal, req *task_dto.CreateTaskRequest) (*task_dto.CreateTaskResponse, *app_errors.AppError) {
	v, settings, err := s.validatorFor(ctx, principal)
	if err != nil {
		return nil, err
	}

	if d := v.CanCreateTask(); !d.Allowed {
		return nil, d.AppError()
	}

	assigneeIDs := uniqueIDs(req.AssigneeIDs)
	if d := v.ValidateCreation(len(assigneeIDs)); !d.Allowed {
		return nil, d.AppError()
	}

	dueDate, err := parseDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}
	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	today := s.today()
	if err := validateSchedule(today, dueDate, startDate, true); err != nil {
		return nil, err
	}

	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.TaskPriority(*req.Priority)
	}

	now := s.now()
	planned := make([]plannedTask, 0, len(assigneeIDs))
	for _, assigneeID := range assigneeIDs {
		assignee, err := s.identity.FindMember(ctx, principal.CompanyID, assigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, app_errors.NewNotFound("task.assignee_not_found")
		}

		if d := v.CanAssignToUser(assignee); !d.Allowed {
			return nil, d.AppError()
		}

		redirected, teamLeadID, err := s.redirection(ctx, v, settings, principal, assignee)
		if err != nil {
			return nil, err
		}

		task := &entity.TaskEntity{
			ID:                      uuid.Must(uuid.NewV7()).String(),
			CompanyID:               principal.CompanyID,
			Title:                   req.Title,
			Description:             req.Description,
			AssignedTo:              assignee.ID,
			AssignedBy:              principal.ID,
			Status:                  entity.TaskPending,
			Priority:                priority,
			DueDate:                 dueDate,
			StartDate:               startDate,
			EstimatedHours:          req.EstimatedHours,
			ProgressPercentage:      0,
			Category:                req.Category,
			Tags:                    req.Tags,
			AssignedDepartmentID:    assignee.DepartmentID,
			IsCrossDepartment:       !entity.SameDepartment(assignee.DepartmentID, principal.DepartmentID),
			IsRedirectedToTeamLead:  redirected,
			TeamLeadID:              teamLeadID,
			TeamLeadApprovalPending: redirected,
			Version:                 1,
			CreatedAt:               now,
			UpdatedAt:               now,
		}
		if task.Tags == nil {
			task.Tags = []string{}
		}
		planned = append(planned, plannedTask{task: task, assignee: assignee})
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	for _, p := range planned {
		if err := s.repo.InsertTask(ctx, t, p.task); err != nil {
			return nil, err
		}
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	resp := &task_dto.CreateTaskResponse{Tasks: make([]task_dto.TaskResponse, 0, len(planned))}
	for _, p := range planned {
		s.notify(p.task, principal, assignmentNotices(p.task, principal, p.assignee)...)
		resp.Tasks = append(resp.Tasks, task_dto.ToTaskResponse(p.task, today))
	}

	log.Info().
		Str("company_id", principal.CompanyID).
		Str("assigned_by", principal.ID).
		Int("count", len(planned)).
		Msg("Aufgaben angelegt")

	return resp, nil
}

// redirection lädt die Abteilung des Empfängers nur, wenn eine Umleitung überhaupt in Frage kommt.
func (s *TaskService) redirection(ctx context.Context, v *permission.TaskValidator, settings *entity.IntegrationSettingsEntity, principal, assignee *entity.Principal) (bool, *string, *app_errors.AppError) {
	if entity.SameDepartment(assignee.DepartmentID, principal.DepartmentID) || settings.CrossDepartmentRedirection != entity.RedirectionTeamLead {
		return false, nil, nil
	}

	var department *entity.Department
	if assignee.DepartmentID != nil {
		dept, err := s.identity.GetDepartment(ctx, *assignee.DepartmentID)
		if err != nil {
			return false, nil, err
		}
		department = dept
	}

	redirected, teamLeadID := v.CrossDepartmentRedirection(assignee, department)
	return redirected, teamLeadID, nil
}

func (s *TaskService) ListTasks(ctx context.Context, principal *entity.Principal, filter task_dto.TaskListFilter) (*dtos.ListResponse[task_dto.TaskResponse], *app_errors.AppError) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	// Sichtbarkeit hängt nur von der Rolle ab, die Einstellungen werden dafür nicht geladen.
	scope := permission.NewTaskValidator(principal, nil).VisibilityScope()
	if scope.Kind == entity.ScopeNone {
		return &dtos.ListResponse[task_dto.TaskResponse]{
			Items: []task_dto.TaskResponse{},
			Meta:  dtos.NewPaginationMeta(page, limit, 0),
		}, nil
	}

	repoFilter := entity.TaskListFilter{Page: page, Limit: limit}
	if filter.Status != nil {
		status := entity.TaskStatus(*filter.Status)
		repoFilter.Status = &status
	}
	if filter.Priority != nil {
		priority := entity.TaskPriority(*filter.Priority)
		repoFilter.Priority = &priority
	}

	tasks, total, err := s.repo.ListTasks(ctx, scope, repoFilter)
	if err != nil {
		return nil, err
	}

	today := s.today()
	items := make([]task_dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, task_dto.ToTaskResponse(&tasks[i], today))
	}

	return &dtos.ListResponse[task_dto.TaskResponse]{
		Items: items,
		Meta:  dtos.NewPaginationMeta(page, limit, total),
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, principal *entity.Principal, taskID string) (*task_dto.TaskDetailResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	if d := permission.NewTaskValidator(principal, nil).CanViewTask(task); !d.Allowed {
		return nil, d.AppError()
	}

	comments, err := s.repo.ListComments(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListChecklistItems(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	resp := &task_dto.TaskDetailResponse{
		TaskResponse: task_dto.ToTaskResponse(task, s.today()),
		Comments:     make([]task_dto.CommentResponse, 0, len(comments)),
		Checklist:    make([]task_dto.ChecklistItemResponse, 0, len(items)),
	}
	for i := range comments {
		resp.Comments = append(resp.Comments, task_dto.ToCommentResponse(&comments[i]))
	}
	for i := range items {
		resp.Checklist = append(resp.Checklist, task_dto.ToChecklistItemResponse(&items[i]))
	}

	return resp, nil
}

func (s *TaskService) ApproveRedirection(ctx context.Context, principal *entity.Principal, taskID string) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	if d := permission.NewTaskValidator(principal, nil).CanApproveRedirection(task); !d.Allowed {
		return nil, d.AppError()
	}

	approved, err := s.repo.ApproveRedirection(ctx, principal.CompanyID, task.ID)
	if err != nil {
		return nil, err
	}

	resp := task_dto.ToTaskResponse(approved, s.today())
	return &resp, nil
}

// DeleteTask löscht weich; danach ist die Aufgabe für alle Lesepfade unsichtbar.
func (s *TaskService) DeleteTask(ctx context.Context, principal *entity.Principal, taskID string) *app_errors.AppError {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return err
	}

	if d := permission.NewTaskValidator(principal, nil).CanDeleteTask(task); !d.Allowed {
		return d.AppError()
	}

	if err := s.repo.SoftDeleteTask(ctx, principal.CompanyID, task.ID); err != nil {
		return err
	}

	log.Info().Str("task_id", task.ID).Str("deleted_by", principal.ID).Msg("Aufgabe gelöscht")
	return nil
}
