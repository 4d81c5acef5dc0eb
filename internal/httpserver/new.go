package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"events-portal/internal/event"
	"events-portal/internal/middleware"
	"events-portal/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Metrics
	gatherer prometheus.Gatherer

	// Event domain
	eventUC event.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	// Gatherer backs /metrics. Defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer

	// Event domain
	EventUseCase event.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		gatherer:    gatherer,
		eventUC:     cfg.EventUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Client IPs come from the socket only; forwarded headers are not trusted.
	if err := srv.gin.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event use case is required")
	}
	return nil
}
