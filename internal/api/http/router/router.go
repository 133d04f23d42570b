package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/stellar-wallet-server/internal/api/http/handler"
	"github.com/dtroode/stellar-wallet-server/internal/api/http/middleware"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
)

// Router wires the wallet API handlers and middleware into a gin engine.
type Router struct {
	authService   handler.AuthService
	walletService handler.WalletService
	tokenService  middleware.TokenService
	logger        *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	walletService handler.WalletService,
	tokenService middleware.TokenService,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:   authService,
		walletService: walletService,
		tokenService:  tokenService,
		logger:        logger,
	}
}

// Register builds the engine with every route of the API.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.logger)

	engine.Use(gin.Recovery(), logging.Handle())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	r.registerAuthRoutes(api.Group("/auth"), authenticate)
	r.registerWalletRoutes(api.Group("/wallet"), authenticate)

	return engine
}

func (r *Router) registerAuthRoutes(group *gin.RouterGroup, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.authService, r.logger)

	group.POST("/connect", h.Connect)
	group.POST("/verify", h.Verify)
	group.GET("/wallet", authenticate.Required(), h.Wallet)
	group.POST("/logout", authenticate.Required(), h.Logout)
}

func (r *Router) registerWalletRoutes(group *gin.RouterGroup, authenticate *middleware.Authenticate) {
	h := handler.NewWallet(r.walletService, r.logger)

	// keyless reads fall back to the authenticated caller
	group.GET("/balance", authenticate.Required(), h.Balance)
	group.GET("/balance/:public_key", h.Balance)
	group.GET("/transactions", authenticate.Required(), h.Transactions)
	group.GET("/transactions/:public_key", h.Transactions)

	group.POST("/payment", h.Payment)
	group.GET("/receipts/:public_key/:hash", h.Receipt)
}
