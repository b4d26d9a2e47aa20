package task_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

// TaskRepoContract kapselt Aufgaben, Kommentare und Checklisten. Alle Lesezugriffe ignorieren weich gelöschte Zeilen.
type TaskRepoContract interface {
	InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError
	GetTaskByID(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	GetTaskForUpdate(ctx context.Context, t tx.Tx, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	UpdateTask(ctx context.Context, t tx.Tx, taskID string, patch *entity.TaskPatch) (*entity.TaskEntity, *app_errors.AppError)
	ApproveRedirection(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	SoftDeleteTask(ctx context.Context, companyID, taskID string) *app_errors.AppError
	ListTasks(ctx context.Context, scope entity.TaskScope, filter entity.TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError)

	InsertComment(ctx context.Context, comment *entity.TaskCommentEntity) *app_errors.AppError
	ListComments(ctx context.Context, taskID string) ([]entity.TaskCommentEntity, *app_errors.AppError)
	GetComment(ctx context.Context, taskID, commentID string) (*entity.TaskCommentEntity, *app_errors.AppError)
	SoftDeleteComment(ctx context.Context, taskID, commentID string) *app_errors.AppError

	InsertChecklistItem(ctx context.Context, item *entity.TaskChecklistItemEntity) *app_errors.AppError
	ListChecklistItems(ctx context.Context, taskID string) ([]entity.TaskChecklistItemEntity, *app_errors.AppError)
	SetChecklistItemCompleted(ctx context.Context, taskID, itemID string, completed bool, by string) (*entity.TaskChecklistItemEntity, *app_errors.AppError)

	ListOverdueTasks(ctx context.Context, today time.Time, limit int) ([]entity.OverdueTask, *app_errors.AppError)
	MarkOverdueNotified(ctx context.Context, taskIDs []string, today time.Time) *app_errors.AppError
}
