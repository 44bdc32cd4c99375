package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionAuthMiddleware creates a Gin middleware handler that validates the
// session cookie through the token service. Unlike the route gate, this
// layer does the expensive verification: an absent, expired or forged token
// is rejected with 401.
func SessionAuthMiddleware(cookieName string, tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			msg := "Invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session has expired"
			}
			logger.Warn("Invalid session token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// Store the session claims in the context
		ctxWithSession := context.WithValue(c.Request.Context(), sessionKey, claims)

		// Add user id to the logger
		enrichedLogger := logger.With(slog.String("user_id", claims.Subject))
		ctxWithLoggerAndSession := context.WithValue(ctxWithSession, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndSession)
		c.Next()
	}
}
