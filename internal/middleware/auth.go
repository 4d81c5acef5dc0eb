package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"events-portal/internal/model"
	"events-portal/pkg/log"
)

const (
	scopeKey        = "scope"
	tokenCookieName = "token"
	bearerPrefix    = "bearer "
)

// Auth resolves the caller's bearer credential and stores it in the request scope.
// A missing credential is not rejected; the upstream API decides.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := extractToken(c)
		if token == "" && m.serviceToken != nil {
			tok, err := m.serviceToken.Token()
			if err != nil {
				m.l.Warnf(ctx, "middleware.Auth: service token unavailable: %v", err)
			} else {
				token = tok.AccessToken
			}
		}

		c.Set(scopeKey, model.Scope{
			RequestID: log.RequestIDFromContext(ctx),
			Token:     token,
		})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth, or a zero Scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{RequestID: log.RequestIDFromContext(c.Request.Context())}
}

func extractToken(c *gin.Context) string {
	if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(header[len(bearerPrefix):])
		}
	}
	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return cookie
	}
	return ""
}
