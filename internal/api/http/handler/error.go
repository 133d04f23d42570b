package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

func handleError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidKeyFormat),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidMemo),
		errors.Is(err, model.ErrInvalidAsset),
		errors.Is(err, model.ErrInvalidTransactionHash),
		errors.Is(err, model.ErrMissingAssetIssuer),
		errors.Is(err, model.ErrSessionNotFoundOrExpired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrInvalidSignature),
		errors.Is(err, model.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, model.ErrIdentityNotFound),
		errors.Is(err, model.ErrAccountNotFunded):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrPaymentRejected):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, model.ErrGatewayUnavailable):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// abortWithError writes the error body for err. Server-side failures are
// attached to the context so the logging middleware reports them.
func abortWithError(c *gin.Context, err error) {
	status, msg := handleError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}
