package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

const (
	tokenAudience = "Arbeitsplatz-meister"
	tokenIssuer   = "APM-service"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel, falls keiner konfiguriert ist.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken erstellt ein lokales V4 Token (encrypted). sub ist die Auth-User-ID.
func (m *PasetoMaker) CreateToken(authUserID, email, sessionID string, duration time.Duration) (string, time.Time) {
	now := time.Now()
	exp := now.Add(duration)

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(exp)
	token.SetAudience(tokenAudience)
	token.SetIssuer(tokenIssuer)
	token.SetSubject(authUserID)
	token.SetString("email", email)
	token.SetJti(sessionID)

	return token.V4Encrypt(m.symmetricKey, nil), exp
}

type PayloadPaseto struct {
	AuthUserID string
	Email      string
	JTI        string
	ExpiresAt  time.Time
}

// VerifyToken decrypts und überprüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsed, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("Token decryption/verification failed: %w", err)
	}

	sub, err := parsed.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("Token without subject: %w", err)
	}
	email, _ := parsed.GetString("email")
	jti, _ := parsed.GetJti()
	exp, _ := parsed.GetExpiration()

	return &PayloadPaseto{
		AuthUserID: sub,
		Email:      email,
		JTI:        jti,
		ExpiresAt:  exp,
	}, nil
}
