package identity_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityRepo struct {
	db *pgxpool.Pool
}

func NewIdentityRepo(db *pgxpool.Pool) IdentityRepoContract {
	return &IdentityRepo{
		db: db,
	}
}

func (r *IdentityRepo) FindCompanyAdmin(ctx context.Context, authUserID string) (*entity.Principal, *app_errors.AppError) {
	query := `
	SELECT user_id, name, email, company_id
	FROM company_admins
	WHERE user_id = $1;
	`

	p := entity.Principal{Role: entity.RoleAdmin, Source: entity.SourceCompanyAdmin}
	if err := r.db.QueryRow(ctx, query, authUserID).Scan(&p.ID, &p.Name, &p.Email, &p.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &p, nil
}

func (r *IdentityRepo) FindStaffByEmail(ctx context.Context, email string) (*entity.Principal, *app_errors.AppError) {
	query := `
	SELECT id, name, email, role, company_id, department_id
	FROM users
	WHERE lower(email) = lower($1)
		AND is_active;
	`

	p := entity.Principal{Source: entity.SourceStaff}
	if err := r.db.QueryRow(ctx, query, email).Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.CompanyID, &p.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &p, nil
}

// FindMember sucht einen Principal (Mitarbeiter oder Admin) innerhalb eines Unternehmens.
func (r *IdentityRepo) FindMember(ctx context.Context, companyID, principalID string) (*entity.Principal, *app_errors.AppError) {
	query := `
	SELECT id, name, email, role, company_id, department_id, 'staff'
	FROM users
	WHERE id = $1 AND company_id = $2 AND is_active
	UNION ALL
	SELECT user_id, name, email, 'admin', company_id, NULL::uuid, 'admin'
	FROM company_admins
	WHERE user_id = $1 AND company_id = $2
	LIMIT 1;
	`

	var p entity.Principal
	if err := r.db.QueryRow(ctx, query, principalID, companyID).Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.CompanyID, &p.DepartmentID, &p.Source); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &p, nil
}

func (r *IdentityRepo) GetDepartment(ctx context.Context, departmentID string) (*entity.Department, *app_errors.AppError) {
	query := `
	SELECT id, company_id, name, head_id
	FROM departments
	WHERE id = $1;
	`

	var d entity.Department
	if err := r.db.QueryRow(ctx, query, departmentID).Scan(&d.ID, &d.CompanyID, &d.Name, &d.HeadID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &d, nil
}
