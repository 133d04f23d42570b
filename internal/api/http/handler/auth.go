package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpctx "github.com/dtroode/stellar-wallet-server/internal/api/http/context"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// AuthService defines the challenge/response login operations.
type AuthService interface {
	IssueChallenge(ctx context.Context, publicKey string) (model.ChallengeResult, error)
	VerifySignature(ctx context.Context, publicKey, challenge, signature string) (model.VerifyResult, error)
	Wallet(ctx context.Context, publicKey string) (model.Identity, error)
	Logout(ctx context.Context, accessToken string) error
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type connectRequest struct {
	PublicKey string `json:"public_key" binding:"required"`
}

type connectResponse struct {
	Challenge  string    `json:"challenge"`
	SessionKey string    `json:"session_key"`
	PublicKey  string    `json:"public_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type verifyRequest struct {
	PublicKey string `json:"public_key" binding:"required"`
	Challenge string `json:"challenge" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type verifyResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Wallet      walletResponse `json:"wallet"`
	SessionKey  string         `json:"session_key"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
}

type walletResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PublicKey           string     `json:"public_key"`
	OwnerRef            uuid.UUID  `json:"owner_ref"`
	CreatedAt           time.Time  `json:"created_at"`
	LastAuthenticatedAt *time.Time `json:"last_authenticated_at"`
}

func newWalletResponse(identity model.Identity) walletResponse {
	return walletResponse{
		ID:                  identity.ID,
		PublicKey:           identity.PublicKey,
		OwnerRef:            identity.OwnerRef,
		CreatedAt:           identity.CreatedAt,
		LastAuthenticatedAt: identity.LastAuthenticatedAt,
	}
}

// Connect issues a challenge for the submitted public key.
func (h *Auth) Connect(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authService.IssueChallenge(c.Request.Context(), req.PublicKey)
	if err != nil {
		h.logger.Debug("Auth handler: challenge not issued",
			"public_key", req.PublicKey,
			"error", err.Error())
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, connectResponse{
		Challenge:  result.Challenge,
		SessionKey: result.SessionToken,
		PublicKey:  result.PublicKey,
		ExpiresAt:  result.ExpiresAt,
	})
}

// Verify completes the challenge and returns an access token.
func (h *Auth) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authService.VerifySignature(c.Request.Context(), req.PublicKey, req.Challenge, req.Signature)
	if err != nil {
		h.logger.Info("Auth handler: verification failed",
			"public_key", req.PublicKey,
			"error", err.Error())
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyResponse{
		Success:     true,
		Message:     "Authentication successful",
		Wallet:      newWalletResponse(result.Identity),
		SessionKey:  result.SessionToken,
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
	})
}

// Wallet returns the caller's identity.
func (h *Auth) Wallet(c *gin.Context) {
	principal, ok := httpctx.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	identity, err := h.authService.Wallet(c.Request.Context(), principal.Claims.PublicKey)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(identity))
}

// Logout revokes the caller's access token.
func (h *Auth) Logout(c *gin.Context) {
	principal, ok := httpctx.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), principal.AccessToken); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
