package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events-portal/internal/event"
	"events-portal/internal/httpserver"
	"events-portal/internal/middleware"
	"events-portal/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubUseCase struct{}

func (stubUseCase) Load(ctx context.Context, input event.LoadInput) (event.LoadOutput, error) {
	return event.LoadOutput{}, event.ErrMissingID
}
func (stubUseCase) Detail(ctx context.Context, input event.LoadInput) (event.DetailOutput, error) {
	return event.DetailOutput{Event: model.EventDetail(`{"id":"` + input.ID + `"}`)}, nil
}
func (stubUseCase) Action(ctx context.Context, sc model.Scope, input event.ActionInput) (event.ActionOutput, error) {
	return event.ActionOutput{RedirectTo: event.EventsPath}, nil
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(cfg.Logger, cfg)
	require.NoError(t, err)
	return srv
}

func validConfig() httpserver.Config {
	l := &mockLogger{}
	return httpserver.Config{
		Logger:       l,
		Port:         8081,
		Mode:         gin.TestMode,
		Environment:  string(model.EnvironmentDevelopment),
		Middleware:   middleware.New(l, middleware.Config{}),
		Gatherer:     prometheus.NewRegistry(),
		EventUseCase: stubUseCase{},
	}
}

func TestNewValidation(t *testing.T) {
	cases := map[string]func(*httpserver.Config){
		"Missing Logger":  func(c *httpserver.Config) { c.Logger = nil },
		"Missing Mode":    func(c *httpserver.Config) { c.Mode = "" },
		"Missing Port":    func(c *httpserver.Config) { c.Port = 0 },
		"Missing UseCase": func(c *httpserver.Config) { c.EventUseCase = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			_, err := httpserver.New(cfg.Logger, cfg)
			assert.Error(t, err)
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, validConfig())

	t.Run("Health", func(t *testing.T) {
		for _, path := range []string{"/health", "/ready", "/live"} {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Event Detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/abc", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, strings.Contains(w.Body.String(), `"id":"abc"`))
	})

	t.Run("Event Action", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/events/abc", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/events", w.Header().Get("Location"))
	})
}

func TestRateLimitIgnoresForwardedFor(t *testing.T) {
	cfg := validConfig()
	cfg.Middleware = middleware.New(cfg.Logger, middleware.Config{RateLimitPerMin: 1})
	srv := newServer(t, cfg)

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/events/abc", nil)
		req.RemoteAddr = "192.0.2.10:40000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusSeeOther, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRunShutdown(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 18089
	srv := newServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
