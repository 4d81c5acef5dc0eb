package http

import (
	"events-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Mutations go through Auth so the caller's credential reaches the events API.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("/:id", h.Detail)
		events.GET("/:id/stream", h.Stream)
		events.DELETE("/:id", mw.RateLimit(), mw.Auth(), h.Action)
		events.POST("/:id", mw.RateLimit(), mw.Auth(), h.Action)
	}
}
