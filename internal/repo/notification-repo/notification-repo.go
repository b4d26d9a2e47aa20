package notification_repo

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepo(db *pgxpool.Pool) NotificationRepoContract {
	return &NotificationRepo{
		db: db,
	}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError {
	query := `
	INSERT INTO notifications (
			id, user_id, company_id, type, title, message,
			related_task_id, related_task_title, triggered_by, created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
		)
	ON CONFLICT (id) DO NOTHING;
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		n.ID,
		n.UserID,
		n.CompanyID,
		n.Kind,
		n.Title,
		n.Message,
		n.RelatedTaskID,
		n.RelatedTaskTitle,
		n.TriggeredBy,
		n.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *NotificationRepo) ListForUser(ctx context.Context, userID string, page, limit int) ([]entity.NotificationEntity, int64, *app_errors.AppError) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND deleted_at IS NULL`, userID).Scan(&total); err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}

	query := `
	SELECT id, user_id, company_id, type, title, message, related_task_id,
		related_task_title, triggered_by, read, created_at, read_at, deleted_at
	FROM notifications
	WHERE user_id = $1
		AND deleted_at IS NULL
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3;
	`

	rows, err := r.db.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	results := []entity.NotificationEntity{}
	for rows.Next() {
		var n entity.NotificationEntity
		if err := rows.Scan(&n.ID, &n.UserID, &n.CompanyID, &n.Kind, &n.Title, &n.Message, &n.RelatedTaskID,
			&n.RelatedTaskTitle, &n.TriggeredBy, &n.Read, &n.CreatedAt, &n.ReadAt, &n.DeletedAt); err != nil {
			return nil, 0, app_errors.MapPgxError(err)
		}
		results = append(results, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}

	return results, total, nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read AND deleted_at IS NULL`, userID).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return count, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) *app_errors.AppError {
	query := `
	UPDATE notifications
	SET read = TRUE,
		read_at = COALESCE(read_at, now())
	WHERE id = $1
		AND user_id = $2
		AND deleted_at IS NULL;
	`

	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFound("notification.not_found")
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	query := `
	UPDATE notifications
	SET read = TRUE,
		read_at = now()
	WHERE user_id = $1
		AND NOT read
		AND deleted_at IS NULL;
	`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepo) SoftDelete(ctx context.Context, userID, notificationID string) *app_errors.AppError {
	query := `
	UPDATE notifications
	SET deleted_at = now()
	WHERE id = $1
		AND user_id = $2
		AND deleted_at IS NULL;
	`

	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFound("notification.not_found")
	}
	return nil
}
