// cmd/cryptovault-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/cryptovault/internal/api/rest/v1"
	"github.com/MGTheTrain/cryptovault/internal/app"
	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/cryptovault/internal/pkg/config"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
	"github.com/MGTheTrain/cryptovault/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration. An unset CONFIG_PATH searches ./configs and the working directory.
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	cryptoService cryptoalg.CryptoService
	collector     *metrics.Collector
}

// initializeDependencies sets up processors, the crypto service and its metrics decorator
func initializeDependencies(log logger.Logger) (*appDependencies, error) {
	processors, err := cryptography.NewProcessors(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}
	log.Info("Cryptographic processors initialized successfully")

	cryptoService, err := app.NewCryptoService(processors, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto service: %w", err)
	}

	collector, err := metrics.NewCollector()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics collector: %w", err)
	}

	return &appDependencies{
		cryptoService: app.NewInstrumentedCryptoService(cryptoService, collector, log),
		collector:     collector,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	r, err := v1.NewRouter(cfg, deps.cryptoService, log, deps.collector.Handler())
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
