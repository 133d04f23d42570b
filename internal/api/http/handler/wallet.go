package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/stellar-wallet-server/internal/api/http/context"
	"github.com/dtroode/stellar-wallet-server/internal/ledger"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// DefaultHistoryLimit applies when no limit query parameter is given.
const DefaultHistoryLimit = 10

// WalletService defines the ledger operations exposed over HTTP.
type WalletService interface {
	GetBalances(ctx context.Context, publicKey string) ([]model.LedgerBalance, error)
	SubmitPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentReceipt, error)
	GetHistory(ctx context.Context, publicKey string, limit int) ([]model.LedgerTransactionRecord, error)
	Receipt(ctx context.Context, source, hash string) (model.PaymentReceipt, error)
}

// Wallet handles the /api/wallet endpoints.
type Wallet struct {
	walletService WalletService
	logger        *logger.Logger
}

// NewWallet creates a new Wallet handler.
func NewWallet(walletService WalletService, logger *logger.Logger) *Wallet {
	return &Wallet{walletService: walletService, logger: logger}
}

type balanceResponse struct {
	PublicKey   string                `json:"public_key"`
	Balances    []model.LedgerBalance `json:"balances"`
	TotalAssets int                   `json:"total_assets"`
}

type paymentRequest struct {
	Destination string      `json:"destination" binding:"required"`
	Amount      json.Number `json:"amount" binding:"required"`
	AssetCode   string      `json:"asset_code"`
	AssetIssuer string      `json:"asset_issuer"`
	Memo        string      `json:"memo"`
	SecretKey   string      `json:"secret_key" binding:"required"`
}

type paymentResponse struct {
	Success bool `json:"success"`
	model.PaymentReceipt
}

type historyResponse struct {
	PublicKey         string                          `json:"public_key"`
	Transactions      []model.LedgerTransactionRecord `json:"transactions"`
	TotalTransactions int                             `json:"total_transactions"`
	Limit             int                             `json:"limit"`
}

var errInvalidLimit = errors.New("limit must be an integer")

// Balance returns the balances of the :public_key account, or of the caller
// when the path carries no key.
func (h *Wallet) Balance(c *gin.Context) {
	publicKey, ok := h.targetKey(c)
	if !ok {
		return
	}

	balances, err := h.walletService.GetBalances(c.Request.Context(), publicKey)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if balances == nil {
		balances = []model.LedgerBalance{}
	}

	c.JSON(http.StatusOK, balanceResponse{
		PublicKey:   publicKey,
		Balances:    balances,
		TotalAssets: len(balances),
	})
}

// Payment builds, signs and submits a single payment.
func (h *Wallet) Payment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := h.walletService.SubmitPayment(c.Request.Context(), model.PaymentRequest{
		Destination: req.Destination,
		Amount:      req.Amount.String(),
		AssetCode:   req.AssetCode,
		AssetIssuer: req.AssetIssuer,
		Memo:        req.Memo,
		SecretSeed:  req.SecretKey,
	})
	if err != nil {
		h.logger.Info("Wallet handler: payment failed",
			"destination", req.Destination,
			"error", err.Error())
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentResponse{Success: true, PaymentReceipt: receipt})
}

// Transactions returns recent operations of the :public_key account, or of
// the caller when the path carries no key.
func (h *Wallet) Transactions(c *gin.Context) {
	publicKey, ok := h.targetKey(c)
	if !ok {
		return
	}

	limit := DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit.Error()})
			return
		}
		limit = n
	}
	limit = ledger.ClampLimit(limit)

	records, err := h.walletService.GetHistory(c.Request.Context(), publicKey, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if records == nil {
		records = []model.LedgerTransactionRecord{}
	}

	c.JSON(http.StatusOK, historyResponse{
		PublicKey:         publicKey,
		Transactions:      records,
		TotalTransactions: len(records),
		Limit:             limit,
	})
}

// Receipt returns the archived receipt of a payment.
func (h *Wallet) Receipt(c *gin.Context) {
	receipt, err := h.walletService.Receipt(c.Request.Context(), c.Param("public_key"), c.Param("hash"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (h *Wallet) targetKey(c *gin.Context) (string, bool) {
	if key := c.Param("public_key"); key != "" {
		return key, true
	}

	principal, ok := httpctx.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", false
	}
	return principal.Claims.PublicKey, true
}
