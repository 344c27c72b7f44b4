package main

import (
	"github.com/Crypto1181/Caballo/internal/application/accountservice"
	authservice "github.com/Crypto1181/Caballo/internal/application/auth"
	"github.com/Crypto1181/Caballo/internal/application/depositservice"
	"github.com/Crypto1181/Caballo/internal/application/orderservice"
	"github.com/Crypto1181/Caballo/internal/application/reconcilerservice"
	"github.com/Crypto1181/Caballo/internal/infrastructure/database"
	"github.com/Crypto1181/Caballo/internal/infrastructure/http/clients"
	"github.com/Crypto1181/Caballo/internal/repositories/depositrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/eventrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/ledgerrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/orderrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/profilerepo"
	"github.com/Crypto1181/Caballo/internal/server"
	"github.com/Crypto1181/Caballo/internal/server/handlers"
	"github.com/Crypto1181/Caballo/internal/server/websocket"
	"github.com/Crypto1181/Caballo/pkg/config"
	"github.com/Crypto1181/Caballo/pkg/logger"
)

func main() {
	logger := logger.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.ShutDown()

	depositRepo := depositrepo.New(db, logger)
	ledgerRepo := ledgerrepo.New(db, logger)
	profileRepo := profilerepo.New(db, logger)
	orderRepo := orderrepo.New(db, logger)
	eventRepo := eventrepo.New(db, logger)

	stripeClient := clients.NewStripeClient(cfg.Stripe, logger)
	alpacaClient := clients.NewAlpacaClient(cfg.Alpaca, logger)

	wsManager := websocket.NewManager(cfg.WebSocket)

	reconcilerService := reconcilerservice.New(depositRepo, ledgerRepo, eventRepo, wsManager, logger)
	depositService := depositservice.New(depositRepo, profileRepo, stripeClient, logger)
	accountService := accountservice.New(profileRepo, alpacaClient, logger)
	orderService := orderservice.New(orderRepo, profileRepo, alpacaClient, logger)
	authService := authservice.New(cfg.JWT, logger)

	h := handlers.New(
		reconcilerService,
		depositService,
		accountService,
		orderService,
		authService,
		ledgerRepo,
		wsManager,
		logger,
		cfg,
	)

	srv := server.New(cfg, h, logger)
	srv.Start()
}
