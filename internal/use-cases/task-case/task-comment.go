package task_case

import (
	"context"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/permission"
	"github.com/google/uuid"
)

// AddComment hängt einen Kommentar an; Kommentare werden nie bearbeitet.
func (s *TaskService) AddComment(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.AddCommentRequest) (*task_dto.CommentResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	if d := permission.NewTaskValidator(principal, nil).CanCommentTask(task); !d.Allowed {
		return nil, d.AppError()
	}

	mentions := uniqueIDs(req.Mentions)
	now := s.now()
	comment := &entity.TaskCommentEntity{
		ID:        uuid.Must(uuid.NewV7()).String(),
		TaskID:    task.ID,
		Content:   req.Content,
		PostedBy:  principal.ID,
		Mentions:  mentions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertComment(ctx, comment); err != nil {
		return nil, err
	}

	s.notify(task, principal, commentNotices(task, principal)...)

	resp := task_dto.ToCommentResponse(comment)
	return &resp, nil
}

func (s *TaskService) DeleteComment(ctx context.Context, principal *entity.Principal, taskID, commentID string) *app_errors.AppError {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return err
	}

	comment, err := s.repo.GetComment(ctx, task.ID, commentID)
	if err != nil {
		return err
	}

	privileged := principal.Role == entity.RoleAdmin || principal.Role == entity.RoleManager
	if !privileged && comment.PostedBy != principal.ID {
		return app_errors.NewPermissionDenied("Only the comment author, admins or managers can delete comments")
	}

	return s.repo.SoftDeleteComment(ctx, task.ID, comment.ID)
}

func (s *TaskService) AddChecklistItem(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.AddChecklistItemRequest) (*task_dto.ChecklistItemResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	if d := permission.NewTaskValidator(principal, nil).CanUpdateTask(task); !d.Allowed {
		return nil, d.AppError()
	}

	now := s.now()
	item := &entity.TaskChecklistItemEntity{
		ID:          uuid.Must(uuid.NewV7()).String(),
		TaskID:      task.ID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// OrderIndex wird vom Insert gesetzt.
	if err := s.repo.InsertChecklistItem(ctx, item); err != nil {
		return nil, err
	}

	resp := task_dto.ToChecklistItemResponse(item)
	return &resp, nil
}

func (s *TaskService) ToggleChecklistItem(ctx context.Context, principal *entity.Principal, taskID, itemID string, req *task_dto.ToggleChecklistItemRequest) (*task_dto.ChecklistItemResponse, *app_errors.AppError) {
	if req.IsCompleted == nil {
		return nil, app_errors.NewInvalidInput("is_completed is required")
	}

	task, err := s.repo.GetTaskByID(ctx, principal.CompanyID, taskID)
	if err != nil {
		return nil, err
	}

	if d := permission.NewTaskValidator(principal, nil).CanUpdateTask(task); !d.Allowed {
		return nil, d.AppError()
	}

	item, err := s.repo.SetChecklistItemCompleted(ctx, task.ID, itemID, *req.IsCompleted, principal.ID)
	if err != nil {
		return nil, err
	}

	resp := task_dto.ToChecklistItemResponse(item)
	return &resp, nil
}
