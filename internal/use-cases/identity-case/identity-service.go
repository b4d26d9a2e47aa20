package identity_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	identity_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/identity-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityService struct {
	repo identity_repo.IdentityRepoContract
}

func NewIdentityService(db *pgxpool.Pool) IdentityServiceContract {
	return &IdentityService{
		repo: identity_repo.NewIdentityRepo(db),
	}
}

// ResolvePrincipal sucht zuerst unter den Unternehmensadmins (per Auth-User-ID), danach unter den Mitarbeitern (per E-Mail).
func (s *IdentityService) ResolvePrincipal(ctx context.Context, identity entity.AuthIdentity) (*entity.Principal, *app_errors.AppError) {
	admin, err := s.repo.FindCompanyAdmin(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return admin, nil
	}

	if identity.Email == "" {
		return nil, app_errors.NewNotFound("identity.profile_not_found")
	}

	staff, err := s.repo.FindStaffByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, app_errors.NewNotFound("identity.profile_not_found")
	}
	return staff, nil
}
