package settings_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepo(db *pgxpool.Pool) SettingsRepoContract {
	return &SettingsRepo{
		db: db,
	}
}

func (r *SettingsRepo) GetByCompany(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	query := `
	SELECT id, company_id, allow_employee_task_creation, allow_employee_task_assignment,
		allow_intra_department_assignments, allow_multi_task_assignment, allow_timeline_priority_editing,
		cross_department_redirection, created_at, updated_at, updated_by
	FROM task_integration_settings
	WHERE company_id = $1;
	`

	var s entity.IntegrationSettingsEntity
	if err := r.db.QueryRow(ctx, query, companyID).Scan(
		&s.ID,
		&s.CompanyID,
		&s.AllowEmployeeTaskCreation,
		&s.AllowEmployeeTaskAssignment,
		&s.AllowIntraDepartmentAssignments,
		&s.AllowMultiTaskAssignment,
		&s.AllowTimelinePriorityEditing,
		&s.CrossDepartmentRedirection,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &s, nil
}

func (r *SettingsRepo) InsertIfAbsent(ctx context.Context, s *entity.IntegrationSettingsEntity) (bool, *app_errors.AppError) {
	query := `
	INSERT INTO task_integration_settings (
			id, company_id, allow_employee_task_creation, allow_employee_task_assignment,
			allow_intra_department_assignments, allow_multi_task_assignment, allow_timeline_priority_editing,
			cross_department_redirection, created_at, updated_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$9
		)
	ON CONFLICT (company_id) DO NOTHING;
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		s.ID,
		s.CompanyID,
		s.AllowEmployeeTaskCreation,
		s.AllowEmployeeTaskAssignment,
		s.AllowIntraDepartmentAssignments,
		s.AllowMultiTaskAssignment,
		s.AllowTimelinePriorityEditing,
		s.CrossDepartmentRedirection,
		s.CreatedAt,
	)
	if err != nil {
		if app_errors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, app_errors.MapPgxError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SettingsRepo) Update(ctx context.Context, s *entity.IntegrationSettingsEntity) *app_errors.AppError {
	query := `
	UPDATE task_integration_settings
	SET allow_employee_task_creation = $2,
		allow_employee_task_assignment = $3,
		allow_intra_department_assignments = $4,
		allow_multi_task_assignment = $5,
		allow_timeline_priority_editing = $6,
		cross_department_redirection = $7,
		updated_at = $8,
		updated_by = $9
	WHERE company_id = $1;
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		s.CompanyID,
		s.AllowEmployeeTaskCreation,
		s.AllowEmployeeTaskAssignment,
		s.AllowIntraDepartmentAssignments,
		s.AllowMultiTaskAssignment,
		s.AllowTimelinePriorityEditing,
		s.CrossDepartmentRedirection,
		s.UpdatedAt,
		s.UpdatedBy,
	)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewNotFound("settings.not_found")
	}
	return nil
}
