package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/accountservice"
	authservice "github.com/Crypto1181/Caballo/internal/application/auth"
	"github.com/Crypto1181/Caballo/internal/application/depositservice"
	"github.com/Crypto1181/Caballo/internal/application/orderservice"
	"github.com/Crypto1181/Caballo/internal/application/reconcilerservice"
	"github.com/Crypto1181/Caballo/internal/repositories/ledgerrepo"
	"github.com/Crypto1181/Caballo/internal/server/middleware"
	"github.com/Crypto1181/Caballo/internal/server/websocket"
	"github.com/Crypto1181/Caballo/pkg/config"
)

type Handlers struct {
	ReconcilerSvc reconcilerservice.IReconcilerService
	DepositSvc    depositservice.IDepositService
	AccountSvc    accountservice.IAccountService
	OrderSvc      orderservice.IOrderService
	AuthSvc       authservice.IAuthService
	LedgerRepo    ledgerrepo.ILedgerRepository
	WsManager     *websocket.Manager
	Logger        zerolog.Logger
	Config        *config.Config
}

func New(
	reconcilerSvc reconcilerservice.IReconcilerService,
	depositSvc depositservice.IDepositService,
	accountSvc accountservice.IAccountService,
	orderSvc orderservice.IOrderService,
	authSvc authservice.IAuthService,
	ledgerRepo ledgerrepo.ILedgerRepository,
	wsManager *websocket.Manager,
	logger zerolog.Logger,
	config *config.Config,
) *Handlers {
	return &Handlers{
		ReconcilerSvc: reconcilerSvc,
		DepositSvc:    depositSvc,
		AccountSvc:    accountSvc,
		OrderSvc:      orderSvc,
		AuthSvc:       authSvc,
		LedgerRepo:    ledgerRepo,
		WsManager:     wsManager,
		Logger:        logger,
		Config:        config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	mw := middleware.NewMiddleware(h.AuthSvc, h.Logger)
	mw.SetupMiddleware(router)

	webhookHandler := NewWebhookHandler(h.ReconcilerSvc, h.Config.Stripe.WebhookSecret, h.Config.Webhook, h.Logger)
	depositHandler := NewDepositHandler(h.DepositSvc, h.Logger)
	accountHandler := NewAccountHandler(h.AccountSvc, h.Logger)
	orderHandler := NewOrderHandler(h.OrderSvc, h.Logger)
	balanceHandler := NewBalanceHandler(h.LedgerRepo, h.Logger)
	wsHandler := NewWebSocketHandler(h.WsManager)
	healthHandler := NewHealthHandler()

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Deposit status stream
	router.GET("/status", wsHandler.HandleConnection)

	v1 := router.Group("/v1")
	{
		// Signature-gated, not token-gated
		v1.POST("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

		authed := v1.Group("")
		authed.Use(mw.AuthMiddleware())
		{
			authed.POST("/accounts", accountHandler.CreateAccount)

			authed.POST("/deposits", depositHandler.InitiateDeposit)
			authed.GET("/deposits", depositHandler.ListDeposits)

			authed.POST("/orders", orderHandler.PlaceOrder)
			authed.GET("/orders", orderHandler.ListOrders)

			authed.GET("/balances", balanceHandler.ListBalances)
		}
	}
}
