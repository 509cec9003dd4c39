package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/showfinder/showfinder/internal/client"
	"github.com/showfinder/showfinder/internal/config"
	grpcserver "github.com/showfinder/showfinder/internal/grpc"
	"github.com/showfinder/showfinder/internal/metrics"
	"github.com/showfinder/showfinder/internal/render"
	"github.com/showfinder/showfinder/internal/services"
	"github.com/showfinder/showfinder/internal/store"
	"github.com/showfinder/showfinder/internal/web"
)

// storeLogger adapts zerolog to store.Logger.
type storeLogger struct {
	logger zerolog.Logger
}

func (l storeLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("tvmaze_base_url", cfg.TVMazeBaseURL).
		Int("server_port", cfg.Server.Port).
		Int("grpc_port", cfg.GRPC.Port).
		Str("server_address", cfg.Server.Address).
		Str("view_store", cfg.ViewStore.Provider).
		Msg("Application started with configuration")

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Create a client instance
	tvmaze := client.NewClient(cfg)
	defer tvmaze.Close()

	viewStore, err := store.New(cfg.ViewStore.Provider, store.ProviderConfig{
		Size:          cfg.ViewStore.Size,
		TTL:           config.ParseDuration(cfg.ViewStore.TTL, time.Hour, "view_store.ttl"),
		Logger:        storeLogger{logger: logger},
		RedisAddress:  cfg.ViewStore.RedisAddress,
		RedisPassword: cfg.ViewStore.RedisPassword,
		RedisDB:       cfg.ViewStore.RedisDB,
		Group:         "views",
	})
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.ViewStore.Provider).Msg("Failed to create view store")
	}
	defer viewStore.Close()

	renderer, err := render.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load templates")
	}

	browser := services.NewBrowser(tvmaze, services.NewViewStore(viewStore))
	sessions := web.NewSessionStore(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.Secure)
	webServer := web.NewHTTPServer(cfg.Server.Address, cfg.Server.Port,
		web.NewServer(browser, tvmaze, renderer, sessions).Router())

	// Create and configure the gRPC server
	grpcServer := grpcserver.NewGRPCServer(tvmaze)

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	grpcAddress := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.GRPC.Port)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		logger.Fatal().Err(err).Str("address", grpcAddress).Msg("Failed to create listener")
	}

	go func() {
		logger.Info().Str("address", grpcAddress).Msg("Starting gRPC server")
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("Failed to serve gRPC")
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
		grpcServer.GracefulStop()
	}()

	logger.Info().Str("address", webServer.Addr).Msg("Starting HTTP server")
	if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to serve HTTP")
	}

	<-stopped
	logger.Info().Msg("Server stopped gracefully")
}
