package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Claims represents JWT claims of a wallet access token.
type Claims struct {
	jwt.RegisteredClaims
	IdentityID uuid.UUID `json:"identity_id"`
	SessionID  uuid.UUID `json:"session_id"`
	TokenType  string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	accessTTL time.Duration
	now       func() time.Time
}

const (
	defaultAccessTTL = 15 * time.Minute
	typeAccess       = "access"
)

// NewJWT creates a new JWT token manager with the provided secret key.
// A non-positive ttl falls back to 15 minutes.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}
	return &JWT{secretKey: secretKey, accessTTL: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken creates a short-lived access token bound to the verified session.
func (j *JWT) GenerateAccessToken(identity model.Identity, sessionID uuid.UUID) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.PublicKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		IdentityID: identity.ID,
		SessionID:  sessionID,
		TokenType:  typeAccess,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates an access token and extracts its claims.
func (j *JWT) ParseAccessToken(tokenString string) (model.AccessClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.AccessClaims{}, errors.New("access token is invalid")
	}
	if claims.TokenType != typeAccess {
		return model.AccessClaims{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return model.AccessClaims{}, errors.New("access token is missing required claims")
	}

	return model.AccessClaims{
		TokenID:    claims.ID,
		IdentityID: claims.IdentityID,
		PublicKey:  claims.Subject,
		SessionID:  claims.SessionID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
