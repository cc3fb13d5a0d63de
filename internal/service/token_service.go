package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/guttosm/food-order-service/internal/domain/dto"
)

const sessionTokenIssuer = "food-order-service"

// TokenService signs and validates session tokens.
type TokenService interface {
	// Generate signs a token whose subject is the session id.
	Generate(sessionID string) (*dto.SessionToken, error)
	// Validate parses a token and returns its claims, or ErrInvalidToken.
	Validate(tokenString string) (*dto.SessionClaims, error)
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TTL       time.Duration
}

// TokenServiceImpl implements TokenService with HS256 JWTs.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenService creates a new token service. A non-positive TTL means two hours.
func NewTokenService(cfg TokenConfig) TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *TokenServiceImpl) Generate(sessionID string) (*dto.SessionToken, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is empty, cannot create token")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    sessionTokenIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.SessionToken{
		Token:     signed,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func (s *TokenServiceImpl) Validate(tokenString string) (*dto.SessionClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	out := &dto.SessionClaims{SessionID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
