// File: zora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zora/config"
	"zora/database"
	clientRepoPkg "zora/database/repository/client"
	featuredRepoPkg "zora/database/repository/featured"
	ledgerRepoPkg "zora/database/repository/ledger"
	notificationRepoPkg "zora/database/repository/notification"
	partnerRepoPkg "zora/database/repository/partner"
	requestRepoPkg "zora/database/repository/request"
	settingsRepoPkg "zora/database/repository/settings"
	"zora/handlers"
	"zora/routes"
	"zora/services/advisory"
	clientSvc "zora/services/client"
	"zora/services/notification"
	partnerSvc "zora/services/partner"
	"zora/services/payment"
	"zora/services/trip"
	"zora/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	reqRepo := requestRepoPkg.NewMongoRequestRepo()
	ledgerRepo := ledgerRepoPkg.NewMongoLedgerRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	pRepo := partnerRepoPkg.NewMongoPartnerRepo()
	cRepo := clientRepoPkg.NewMongoClientRepo()
	featuredRepo := featuredRepoPkg.NewMongoFeaturedOfferRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Payment gateway: simulated unless explicitly switched to Stripe.
	var gateway payment.Gateway
	if config.AppConfig.PaymentMode == "stripe" {
		gateway = payment.NewStripeGateway(logger)
	} else {
		gateway = payment.NewSimulatedGateway(logger)
	}

	// Advisory service with Redis-backed chat context.
	ctxStore := advisory.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	advisorySvc := advisory.NewGeminiService(config.AppConfig.GeminiAPIKey, ctxStore, logger)

	notificationService := &notification.DefaultNotificationService{
		Repo:   notifRepo,
		Queue:  notification.NewQueueClient(),
		Logger: logger,
	}
	notification.InitEmailWorker(notifRepo)

	tripService := &trip.DefaultTripService{
		Repo:     reqRepo,
		Ledger:   ledgerRepo,
		Settings: settingsRepo,
		Partners: pRepo,
		Clients:  cRepo,
		Advisory: advisorySvc,
		Gateway:  gateway,
		Logger:   logger,
	}
	partnerService := &partnerSvc.DefaultPartnerService{
		Repo:   pRepo,
		Ledger: ledgerRepo,
		Logger: logger,
	}
	clientService := &clientSvc.DefaultClientService{
		Repo:   cRepo,
		Ledger: ledgerRepo,
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Trip:     handlers.NewTripHandler(tripService, notificationService, logger),
		Offer:    handlers.NewOfferHandler(tripService, logger),
		Query:    handlers.NewRequestQueryHandler(reqRepo),
		Partner:  handlers.NewPartnerHandler(partnerService),
		Client:   handlers.NewClientHandler(clientService),
		Admin:    handlers.NewAdminHandler(settingsRepo, ledgerRepo, notificationService),
		Advisory: handlers.NewAdvisoryHandler(advisorySvc, tripService, reqRepo, logger),
		Featured: handlers.NewFeaturedOfferHandler(featuredRepo, pRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
