package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/domain"
)

const tokenTTL = 12 * time.Hour

// UseCase exchanges the configured admin key for a short-lived JWT that
// protects the admin API.
type UseCase struct {
	secret   string
	issuer   string
	adminKey string
	logger   *zap.Logger
}

func New(secret, issuer, adminKey string, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		secret:   secret,
		issuer:   issuer,
		adminKey: adminKey,
		logger:   logger,
	}
}

// Token is an issued credential with its expiry.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login verifies the presented admin key and issues a signed token. The key
// comparison is constant time.
func (uc *UseCase) Login(_ context.Context, adminKey string) (*Token, error) {
	if uc.adminKey == "" || subtle.ConstantTimeCompare([]byte(adminKey), []byte(uc.adminKey)) != 1 {
		uc.logger.Warn("admin login rejected")
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"iss":     uc.issuer,
		"sub":     "admin",
		"jti":     uuid.NewString(),
		"user_id": "admin",
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.secret))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to sign token", err)
	}

	return &Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}
