package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "events-portal/internal/event/delivery/http"
)

// setupEventDomain registers the event detail view routes under /api/v1/events.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
