package identity_repo

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

// IdentityRepoContract liest Principals und Abteilungen. Nicht gefundene Datensätze liefern (nil, nil).
type IdentityRepoContract interface {
	FindCompanyAdmin(ctx context.Context, authUserID string) (*entity.Principal, *app_errors.AppError)
	FindStaffByEmail(ctx context.Context, email string) (*entity.Principal, *app_errors.AppError)
	FindMember(ctx context.Context, companyID, principalID string) (*entity.Principal, *app_errors.AppError)
	GetDepartment(ctx context.Context, departmentID string) (*entity.Department, *app_errors.AppError)
}
