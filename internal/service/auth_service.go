package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/studyhive/studyhive-api/internal/models"
	"github.com/studyhive/studyhive-api/pkg/config"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

// AuthService signs and verifies identity tokens. It holds no state beyond
// the process-wide secret and the fixed validity window.
type AuthService struct {
	secret []byte
	expiry time.Duration
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(cfg config.JWTConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiration,
		logger: logger,
	}
}

// IssueToken signs the identity claims with the configured expiry. Claims
// are signed exactly as given; a malformed email is not rejected here.
func (s *AuthService) IssueToken(claims models.TokenClaims) (string, error) {
	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	return signed, nil
}

// ValidateToken parses and verifies a token. A bad signature, malformed
// input or expired token all surface as the same unauthorized error; none
// of them panic.
func (s *AuthService) ValidateToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "unauthorized")
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized")
	}

	return claims, nil
}
