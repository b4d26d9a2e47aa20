package task_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, company_id, title, description, assigned_to, assigned_by, status, priority,
	due_date, start_date, completed_date, estimated_hours::float8, actual_hours::float8, progress_percentage,
	category, tags, assigned_department_id, is_cross_department, is_redirected_to_team_lead,
	team_lead_id, team_lead_approval_pending, version, created_at, updated_at, deleted_at`

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

func scanTask(row pgx.Row) (*entity.TaskEntity, error) {
	var t entity.TaskEntity
	if err := row.Scan(
		&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Status, &t.Priority,
		&t.DueDate, &t.StartDate, &t.CompletedDate, &t.EstimatedHours, &t.ActualHours, &t.ProgressPercentage,
		&t.Category, &t.Tags, &t.AssignedDepartmentID, &t.IsCrossDepartment, &t.IsRedirectedToTeamLead,
		&t.TeamLeadID, &t.TeamLeadApprovalPending, &t.Version, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	); err != nil {
		return nil, err
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

func taskNotFound(err error) *app_errors.AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return app_errors.NewNotFound("task.not_found")
	}
	return app_errors.MapPgxError(err)
}

func (r *TaskRepo) InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError {
	query := `
	INSERT INTO tasks (
			id, company_id, title, description, assigned_to, assigned_by, status, priority,
			due_date, start_date, estimated_hours, progress_percentage, category, tags,
			assigned_department_id, is_cross_department, is_redirected_to_team_lead,
			team_lead_id, team_lead_approval_pending, version, created_at, updated_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$21
		);
	`

	if _, err := tx.Unwrap(t).Exec(
		ctx,
		query,
		task.ID,
		task.CompanyID,
		task.Title,
		task.Description,
		task.AssignedTo,
		task.AssignedBy,
		task.Status,
		task.Priority,
		task.DueDate,
		task.StartDate,
		task.EstimatedHours,
		task.ProgressPercentage,
		task.Category,
		task.Tags,
		task.AssignedDepartmentID,
		task.IsCrossDepartment,
		task.IsRedirectedToTeamLead,
		task.TeamLeadID,
		task.TeamLeadApprovalPending,
		task.Version,
		task.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = $1
		AND company_id = $2
		AND deleted_at IS NULL;
	`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID, companyID))
	if err != nil {
		return nil, taskNotFound(err)
	}
	return task, nil
}

// GetTaskForUpdate sperrt die Zeile bis zum Ende der Transaktion.
func (r *TaskRepo) GetTaskForUpdate(ctx context.Context, t tx.Tx, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = $1
		AND company_id = $2
		AND deleted_at IS NULL
	FOR UPDATE;
	`

	task, err := scanTask(tx.Unwrap(t).QueryRow(ctx, query, taskID, companyID))
	if err != nil {
		return nil, taskNotFound(err)
	}
	return task, nil
}

// UpdateTask schreibt die gesetzten Felder und erhöht version in einem Statement.
func (r *TaskRepo) UpdateTask(ctx context.Context, t tx.Tx, taskID string, patch *entity.TaskPatch) (*entity.TaskEntity, *app_errors.AppError) {
	sets := []string{"version = version + 1", "updated_at = now()"}
	args := []any{}
	argsPos := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argsPos))
		args = append(args, value)
		argsPos++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.ProgressPercentage != nil {
		add("progress_percentage", *patch.ProgressPercentage)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Tags != nil {
		add("tags", *patch.Tags)
	}
	if patch.EstimatedHours != nil {
		add("estimated_hours", *patch.EstimatedHours)
	}
	if patch.ActualHours != nil {
		add("actual_hours", *patch.ActualHours)
	}
	if patch.SetCompletedDate {
		add("completed_date", patch.CompletedDate)
	}

	query := fmt.Sprintf(`
	UPDATE tasks
	SET %s
	WHERE id = $%d
		AND deleted_at IS NULL
	RETURNING %s;
	`, strings.Join(sets, ", "), argsPos, taskColumns)
	args = append(args, taskID)

	task, err := scanTask(tx.Unwrap(t).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, taskNotFound(err)
	}
	return task, nil
}

func (r *TaskRepo) ApproveRedirection(ctx context.Context, companyID, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := `
	UPDATE tasks
	SET team_lead_approval_pending = FALSE,
		version = version + 1,
		updated_at = now()
	WHERE id = $1
		AND company_id = $2
		AND deleted_at IS NULL
	RETURNING ` + taskColumns + `;`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID, companyID))
	if err != nil {
		return nil, taskNotFound(err)
	}
	return task, nil
}

func (r *TaskRepo) SoftDeleteTask(ctx context.Context, companyID, taskID string) *app_errors.AppError {
	query := `
	UPDATE tasks
	SET deleted_at = now(),
		updated_at = now()
	WHERE id = $1
		AND company_id = $2
		AND deleted_at IS NULL;
	`

	tag, err := r.db.Exec(ctx, query, taskID, companyID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFound("task.not_found")
	}
	return nil
}

// scopeCondition übersetzt den Sichtbarkeitsbereich in eine WHERE-Bedingung.
func scopeCondition(scope entity.TaskScope) (string, []any) {
	cond := "company_id = $1 AND deleted_at IS NULL"
	args := []any{scope.CompanyID}

	switch scope.Kind {
	case entity.ScopeCompany:
	case entity.ScopeDepartmentOrAssigner:
		if scope.DepartmentID != nil {
			cond += " AND (assigned_department_id = $2 OR assigned_by = $3 OR assigned_to = $3)"
			args = append(args, *scope.DepartmentID, scope.PrincipalID)
		} else {
			cond += " AND (assigned_by = $2 OR assigned_to = $2)"
			args = append(args, scope.PrincipalID)
		}
	case entity.ScopeAssignee:
		cond += " AND assigned_to = $2"
		args = append(args, scope.PrincipalID)
	default:
		cond += " AND FALSE"
	}
	return cond, args
}

func (r *TaskRepo) ListTasks(ctx context.Context, scope entity.TaskScope, filter entity.TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError) {
	where, args := scopeCondition(scope)
	argsPos := len(args) + 1

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argsPos)
		args = append(args, *filter.Status)
		argsPos++
	}

	if filter.Priority != nil {
		where += fmt.Sprintf(" AND priority = $%d", argsPos)
		args = append(args, *filter.Priority)
		argsPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM tasks WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE " + where
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d;", argsPos, argsPos+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	results := []entity.TaskEntity{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, app_errors.MapPgxError(err)
		}
		results = append(results, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, app_errors.MapPgxError(err)
	}

	return results, total, nil
}

func (r *TaskRepo) InsertComment(ctx context.Context, comment *entity.TaskCommentEntity) *app_errors.AppError {
	query := `
	INSERT INTO task_comments (id, task_id, content, posted_by, mentions, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $6);
	`

	if _, err := r.db.Exec(ctx, query, comment.ID, comment.TaskID, comment.Content, comment.PostedBy, comment.Mentions, comment.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *TaskRepo) ListComments(ctx context.Context, taskID string) ([]entity.TaskCommentEntity, *app_errors.AppError) {
	query := `
	SELECT id, task_id, content, posted_by, mentions::text[], created_at, updated_at, deleted_at
	FROM task_comments
	WHERE task_id = $1
		AND deleted_at IS NULL
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	comments := []entity.TaskCommentEntity{}
	for rows.Next() {
		var c entity.TaskCommentEntity
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Content, &c.PostedBy, &c.Mentions, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return comments, nil
}

func (r *TaskRepo) GetComment(ctx context.Context, taskID, commentID string) (*entity.TaskCommentEntity, *app_errors.AppError) {
	query := `
	SELECT id, task_id, content, posted_by, mentions::text[], created_at, updated_at, deleted_at
	FROM task_comments
	WHERE id = $1
		AND task_id = $2
		AND deleted_at IS NULL;
	`

	var c entity.TaskCommentEntity
	if err := r.db.QueryRow(ctx, query, commentID, taskID).Scan(&c.ID, &c.TaskID, &c.Content, &c.PostedBy, &c.Mentions, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewNotFound("task.comment_not_found")
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &c, nil
}

func (r *TaskRepo) SoftDeleteComment(ctx context.Context, taskID, commentID string) *app_errors.AppError {
	query := `
	UPDATE task_comments
	SET deleted_at = now()
	WHERE id = $1
		AND task_id = $2
		AND deleted_at IS NULL;
	`

	tag, err := r.db.Exec(ctx, query, commentID, taskID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFound("task.comment_not_found")
	}
	return nil
}

// InsertChecklistItem vergibt order_index im selben Statement; ein paralleler Insert scheitert an UNIQUE(task_id, order_index).
func (r *TaskRepo) InsertChecklistItem(ctx context.Context, item *entity.TaskChecklistItemEntity) *app_errors.AppError {
	query := `
	INSERT INTO task_checklist_items (id, task_id, title, description, order_index, created_at, updated_at)
	SELECT $1, $2, $3, $4, COALESCE(MAX(order_index) + 1, 0), $5, $5
	FROM task_checklist_items
	WHERE task_id = $2
	RETURNING order_index;
	`

	if err := r.db.QueryRow(ctx, query, item.ID, item.TaskID, item.Title, item.Description, item.CreatedAt).Scan(&item.OrderIndex); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *TaskRepo) ListChecklistItems(ctx context.Context, taskID string) ([]entity.TaskChecklistItemEntity, *app_errors.AppError) {
	query := `
	SELECT id, task_id, title, description, is_completed, completed_by, completed_at, order_index, created_at, updated_at
	FROM task_checklist_items
	WHERE task_id = $1
	ORDER BY order_index ASC;
	`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	items := []entity.TaskChecklistItemEntity{}
	for rows.Next() {
		var i entity.TaskChecklistItemEntity
		if err := rows.Scan(&i.ID, &i.TaskID, &i.Title, &i.Description, &i.IsCompleted, &i.CompletedBy, &i.CompletedAt, &i.OrderIndex, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return items, nil
}

func (r *TaskRepo) SetChecklistItemCompleted(ctx context.Context, taskID, itemID string, completed bool, by string) (*entity.TaskChecklistItemEntity, *app_errors.AppError) {
	query := `
	UPDATE task_checklist_items
	SET is_completed = $3,
		completed_by = CASE WHEN $3 THEN $4::uuid ELSE NULL END,
		completed_at = CASE WHEN $3 THEN now() ELSE NULL END,
		updated_at = now()
	WHERE id = $1
		AND task_id = $2
	RETURNING id, task_id, title, description, is_completed, completed_by, completed_at, order_index, created_at, updated_at;
	`

	var i entity.TaskChecklistItemEntity
	if err := r.db.QueryRow(ctx, query, itemID, taskID, completed, by).Scan(&i.ID, &i.TaskID, &i.Title, &i.Description, &i.IsCompleted, &i.CompletedBy, &i.CompletedAt, &i.OrderIndex, &i.CreatedAt, &i.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewNotFound("task.checklist_item_not_found")
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &i, nil
}

// ListOverdueTasks liefert offene, überfällige Aufgaben ohne Erinnerung für today.
func (r *TaskRepo) ListOverdueTasks(ctx context.Context, today time.Time, limit int) ([]entity.OverdueTask, *app_errors.AppError) {
	query := `
	SELECT id, company_id, title, assigned_to, assigned_by, due_date
	FROM tasks
	WHERE deleted_at IS NULL
		AND status <> 'completed'
		AND due_date < $1
		AND (overdue_notified_at IS NULL OR overdue_notified_at < $1)
	ORDER BY due_date ASC
	LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, today, limit)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var tasks []entity.OverdueTask
	for rows.Next() {
		var t entity.OverdueTask
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Title, &t.AssignedTo, &t.AssignedBy, &t.DueDate); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return tasks, nil
}

func (r *TaskRepo) MarkOverdueNotified(ctx context.Context, taskIDs []string, today time.Time) *app_errors.AppError {
	if len(taskIDs) == 0 {
		return nil
	}

	query := `
	UPDATE tasks
	SET overdue_notified_at = $2
	WHERE id = ANY($1::uuid[]);
	`

	if _, err := r.db.Exec(ctx, query, taskIDs, today); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}
