package worker_handler

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	notification_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/notification-repo"
	task_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/task-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationStore interface {
	Insert(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError
}

type overdueTaskStore interface {
	ListOverdueTasks(ctx context.Context, today time.Time, limit int) ([]entity.OverdueTask, *app_errors.AppError)
	MarkOverdueNotified(ctx context.Context, taskIDs []string, today time.Time) *app_errors.AppError
}

type WorkerHander struct {
	nr  notificationStore
	tr  overdueTaskStore
	now func() time.Time
}

func NewWorkerHandler(db *pgxpool.Pool) *WorkerHander {
	return &WorkerHander{
		nr:  notification_repo.NewNotificationRepo(db),
		tr:  task_repo.NewTaskRepo(db),
		now: time.Now,
	}
}
