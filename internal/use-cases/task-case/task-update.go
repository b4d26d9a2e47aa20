package task_case

import (
	"context"
	"fmt"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/permission"
	"github.com/gofiber/fiber/v2"
)

func buildPatch(req *task_dto.UpdateTaskRequest) (*entity.TaskPatch, *app_errors.AppError) {
	patch := &entity.TaskPatch{
		Title:              req.Title,
		Description:        req.Description,
		ProgressPercentage: req.ProgressPercentage,
		Category:           req.Category,
		Tags:               req.Tags,
		EstimatedHours:     req.EstimatedHours,
		ActualHours:        req.ActualHours,
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, app_errors.NewInvalidInput(fmt.Sprintf("Invalid status '%s'", *req.Status))
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, app_errors.NewInvalidInput(fmt.Sprintf("Invalid priority '%s'", *req.Priority))
		}
		patch.Priority = &priority
	}
	if req.ProgressPercentage != nil && (*req.ProgressPercentage < 0 || *req.ProgressPercentage > 100) {
		return nil, app_errors.NewInvalidInput("Progress percentage must be between 0 and 100")
	}

	var err *app_errors.AppError
	if patch.DueDate, err = parseOptionalDate("due_date", req.DueDate); err != nil {
		return nil, err
	}
	if patch.StartDate, err = parseOptionalDate("start_date", req.StartDate); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, app_errors.NewInvalidInput("No fields to update")
	}
	return patch, nil
}

// touchesTimeline: Fälligkeit, Startdatum und Priorität brauchen zusätzlich die Timeline-Freigabe.
func touchesTimeline(patch *entity.TaskPatch) bool {
	return patch.DueDate != nil || patch.StartDate != nil || patch.Priority != nil
}

// UpdateTask ändert eine Aufgabe unter Zeilensperre. Beide Berechtigungsprüfungen laufen immer,
// damit der Aufrufer jede verletzte Regel sieht.
func (s *TaskService) UpdateTask(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}

	v, _, err := s.validatorFor(ctx, principal)
	if err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	current, err := s.repo.GetTaskForUpdate(ctx, t, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	decisions := []permission.Decision{v.CanUpdateTask(current)}
	if touchesTimeline(patch) {
		decisions = append(decisions, v.CanEditTimelinePriority())
	}
	if d := permission.All(decisions...); !d.Allowed {
		return nil, d.AppError()
	}

	if req.ExpectedVersion != nil && *req.ExpectedVersion != current.Version {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.task_version_mismatch", nil)
	}

	today := s.today()

	if patch.Status != nil {
		if !current.Status.CanTransitionTo(*patch.Status) {
			return nil, app_errors.NewInvalidInput(fmt.Sprintf("Cannot change status from %s to %s", current.Status, *patch.Status))
		}
		switch {
		case *patch.Status == entity.TaskCompleted && current.Status != entity.TaskCompleted:
			patch.SetCompletedDate = true
			patch.CompletedDate = &today
		case *patch.Status != entity.TaskCompleted && current.Status == entity.TaskCompleted:
			patch.SetCompletedDate = true
			patch.CompletedDate = nil
		}
	}

	due := current.DueDate
	dueChanged := patch.DueDate != nil && !patch.DueDate.Equal(entity.DateOnly(current.DueDate))
	if patch.DueDate != nil {
		due = *patch.DueDate
	}
	start := current.StartDate
	if patch.StartDate != nil {
		start = patch.StartDate
	}
	if err := validateSchedule(today, due, start, dueChanged); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateTask(ctx, t, current.ID, patch)
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	var notices []notice
	if updated.Status != current.Status {
		notices = append(notices, statusNotices(updated, principal, current.Status, updated.Status)...)
	}
	if updated.Priority != current.Priority {
		notices = append(notices, priorityNotices(updated, principal, current.Priority, updated.Priority)...)
	}
	if !entity.DateOnly(updated.DueDate).Equal(entity.DateOnly(current.DueDate)) {
		notices = append(notices, timelineNotices(updated, principal, current.DueDate, updated.DueDate)...)
	}
	s.notify(updated, principal, notices...)

	resp := task_dto.ToTaskResponse(updated, today)
	return &resp, nil
}
