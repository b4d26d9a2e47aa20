package auth_dto

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

// SessionResponse beschreibt den angemeldeten Principal und das verwendete Token.
type SessionResponse struct {
	Principal *entity.Principal `json:"principal"`
	TokenID   string            `json:"token_id"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type LogoutResponse struct {
	TokenID      string    `json:"token_id"`
	RevokedUntil time.Time `json:"revoked_until"`
}
