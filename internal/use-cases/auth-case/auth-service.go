package auth_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	auth_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// minRevocationTTL: auch fast abgelaufene Tokens bleiben kurz gesperrt.
const minRevocationTTL = time.Minute

type AuthService struct {
	revoked cache.Cache
	now     func() time.Time
}

func NewAuthService(redis *redis.Client) AuthServiceContract {
	return &AuthService{
		revoked: cache.NewRedisCache(redis),
		now:     time.Now,
	}
}

func (s *AuthService) Session(ctx context.Context, principal *entity.Principal, jti string, expiresAt time.Time) (*auth_dto.SessionResponse, *app_errors.AppError) {
	if principal == nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}
	return &auth_dto.SessionResponse{
		Principal: principal,
		TokenID:   jti,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout setzt die Token-ID bis zum Ablauf des Tokens auf die Widerrufsliste.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) (*auth_dto.LogoutResponse, *app_errors.AppError) {
	if jti == "" {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	now := s.now()
	ttl := expiresAt.Sub(now)
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}

	if err := s.revoked.Set(ctx, utils.RevokedTokenKey(jti), true, ttl); err != nil {
		log.Error().Err(err).Str("jti", jti).Msg("Fehler beim Widerrufen des Tokens")
		return nil, err
	}

	return &auth_dto.LogoutResponse{
		TokenID:      jti,
		RevokedUntil: now.Add(ttl),
	}, nil
}
