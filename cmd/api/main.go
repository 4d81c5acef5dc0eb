package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/oauth2"

	"events-portal/config"
	_ "events-portal/docs" // Swagger docs
	"events-portal/internal/event/repository/remote"
	"events-portal/internal/event/usecase"
	"events-portal/internal/httpserver"
	"events-portal/internal/middleware"
	"events-portal/pkg/log"
)

// @title       Events Portal API
// @description Event detail view backend: concurrent event/list loading and authenticated event mutations.
// @version     1
// @host        localhost:8081
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Events Portal...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Events API: %s", cfg.EventsAPI.BaseURL)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. Event domain
	httpClient := &http.Client{Timeout: cfg.EventsAPI.Timeout}
	eventsClient := remote.NewClient(cfg.EventsAPI.BaseURL, httpClient, remote.NewMetrics(registry))
	eventRepo := remote.New(eventsClient, logger)
	eventUC := usecase.New(eventRepo, logger)

	// 5. Middleware
	mwCfg := middleware.Config{}
	if cfg.Auth.ServiceToken != "" {
		mwCfg.ServiceToken = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Auth.ServiceToken})
		logger.Info(ctx, "Service token configured for unauthenticated mutations")
	}
	if cfg.RateLimit.Enabled {
		mwCfg.RateLimitPerMin = cfg.RateLimit.PerMin
	}
	mw := middleware.New(logger, mwCfg)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		Gatherer:     registry,
		EventUseCase: eventUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
