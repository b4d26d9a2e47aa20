package auth_case

import (
	"context"
	"time"

	auth_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

// AuthServiceContract reicht die Methoden für den AuthService weiter.
type AuthServiceContract interface {
	Session(ctx context.Context, principal *entity.Principal, jti string, expiresAt time.Time) (*auth_dto.SessionResponse, *app_errors.AppError)
	Logout(ctx context.Context, jti string, expiresAt time.Time) (*auth_dto.LogoutResponse, *app_errors.AppError)
}
