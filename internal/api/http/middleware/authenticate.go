package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/stellar-wallet-server/internal/api/http/context"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves the caller behind a bearer access token.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.AccessClaims, error)
}

// Authenticate validates bearer tokens and attaches the caller to the request context.
type Authenticate struct {
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, logger: logger}
}

// Required rejects requests without a valid, unrevoked access token.
func (m *Authenticate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}
		m.attach(c, token)
	}
}

func (m *Authenticate) attach(c *gin.Context, token string) {
	ctx := c.Request.Context()

	claims, err := m.tokenService.Authenticate(ctx, token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"path", c.Request.URL.Path,
			"error", err.Error())

		msg := "invalid authorization token"
		if errors.Is(err, model.ErrTokenRevoked) {
			msg = model.ErrTokenRevoked.Error()
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	c.Request = c.Request.WithContext(httpctx.WithPrincipal(ctx, httpctx.Principal{
		Claims:      claims,
		AccessToken: token,
	}))
	c.Next()
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
