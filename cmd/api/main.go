package main

import (
	"context"
	"fitmarket/internal/client"
	"fitmarket/internal/config"
	"fitmarket/internal/logging"
	"fitmarket/internal/repository"
	"fitmarket/internal/server"
	"fitmarket/internal/service"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)

	db := client.InitMysqlClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	entitlementRepo := repository.NewEntitlementRepository(db)

	if err := productRepo.Seed(context.Background()); err != nil {
		logger.Warn("seed products", "error", err)
	}

	checkoutService := service.NewCheckoutService(stripeClient, cfg.BaseURL, productRepo)
	fulfillmentService := service.NewFulfillmentService(checkoutService, orderRepo, entitlementRepo, logger)
	catalogService := service.NewCatalogService(productRepo)
	purchaseService := service.NewPurchaseService(orderRepo, entitlementRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		cfg.Auth.JWTSecret,
		logger,
		checkoutService,
		fulfillmentService,
		catalogService,
		purchaseService,
	)

	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
