// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"marketmind-payments/internal/config"
	"marketmind-payments/internal/infra/adapters/cashfree"
	"marketmind-payments/internal/infra/logging"
	"marketmind-payments/internal/infra/metrics"
	"marketmind-payments/internal/infra/web"
	"marketmind-payments/internal/usecase"
)

// Overridden at link time: -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	// Secrets come from the environment; .env is a local convenience.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)
	if !cfg.Cashfree.HasCredentials() {
		logger.Warn().Msg("CASHFREE_APP_ID or CASHFREE_SECRET_KEY not set; order creation will fail until configured")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Wiring ----
	gateway := cashfree.NewGateway(cfg.Cashfree, logger)
	checkoutUC := usecase.NewCheckoutUseCase(gateway, cfg.Server.PublicURL, logger)
	srv := web.NewServer(checkoutUC, cfg, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info().
			Int("port", cfg.Server.Port).
			Str("gateway_base", cfg.Cashfree.APIBase).
			Str("frontend", cfg.Frontend.BaseURL).
			Msg("cashfree backend listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
