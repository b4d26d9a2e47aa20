package identity_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type IdentityServiceContract interface {
	ResolvePrincipal(ctx context.Context, identity entity.AuthIdentity) (*entity.Principal, *app_errors.AppError)
}
