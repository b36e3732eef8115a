package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wavemint/marketplace/internal/adapter"
	"github.com/wavemint/marketplace/internal/api/server"
	"github.com/wavemint/marketplace/internal/config"
	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/market"
	"github.com/wavemint/marketplace/internal/messaging"
	"github.com/wavemint/marketplace/internal/notify"
	"github.com/wavemint/marketplace/internal/store"
	"github.com/wavemint/marketplace/internal/xrpl"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting WaveMint marketplace API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Platform wallet signer; fails fast when credentials are missing
	signer, err := xrpl.NewPlatformSigner(cfg.XRPL.PlatformAddress, cfg.XRPL.PlatformSeed)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load platform wallet", zap.Error(err))
	}
	dialer := xrpl.NewDialer(xrpl.Config{WebSocketURL: cfg.XRPL.WebSocketURL}, signer)
	logger.InfoCtx(ctx, "Platform wallet loaded",
		zap.String("address", signer.Address()),
		zap.String("websocket_url", cfg.XRPL.WebSocketURL),
	)

	// Chat side-channel; disabled when no webhook URL is configured
	notifier := notify.NewWebhookNotifier(cfg.Notify.WebhookURL, adapter.NewHTTPClient(cfg.Notify.HTTPTimeout))

	// Sale-event publisher; disabled when no NATS URL is configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = messaging.NewJetStreamPublisher(messaging.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, sale events will not be published")
	}

	// Market service
	broker := market.NewService(dataStore, dialer, notifier, publisher, market.Config{
		PlatformAddress:       cfg.XRPL.PlatformAddress,
		PlatformFeePercent:    cfg.Market.PlatformFeePercent,
		DefaultRoyaltyPercent: cfg.Market.DefaultRoyaltyPercent,
		ReservationTTL:        cfg.Market.ReservationTTL,
	})

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, broker)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
