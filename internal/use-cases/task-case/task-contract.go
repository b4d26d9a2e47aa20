package task_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/dtos"
	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type TaskServiceContract interface {
	CreateTask(ctx context.Context, principal *entity.Principal, req *task_dto.CreateTaskRequest) (*task_dto.CreateTaskResponse, *app_errors.AppError)
	ListTasks(ctx context.Context, principal *entity.Principal, filter task_dto.TaskListFilter) (*dtos.ListResponse[task_dto.TaskResponse], *app_errors.AppError)
	GetTask(ctx context.Context, principal *entity.Principal, taskID string) (*task_dto.TaskDetailResponse, *app_errors.AppError)
	UpdateTask(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	ApproveRedirection(ctx context.Context, principal *entity.Principal, taskID string) (*task_dto.TaskResponse, *app_errors.AppError)
	DeleteTask(ctx context.Context, principal *entity.Principal, taskID string) *app_errors.AppError
	AddComment(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.AddCommentRequest) (*task_dto.CommentResponse, *app_errors.AppError)
	DeleteComment(ctx context.Context, principal *entity.Principal, taskID, commentID string) *app_errors.AppError
	AddChecklistItem(ctx context.Context, principal *entity.Principal, taskID string, req *task_dto.AddChecklistItemRequest) (*task_dto.ChecklistItemResponse, *app_errors.AppError)
	ToggleChecklistItem(ctx context.Context, principal *entity.Principal, taskID, itemID string, req *task_dto.ToggleChecklistItemRequest) (*task_dto.ChecklistItemResponse, *app_errors.AppError)
}
