package middleware

import (
	"github.com/activitydash/activity_dashboard_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the authenticated session claims in
// the request context.
const sessionKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session claims from the
// request context. It returns the claims and a boolean indicating if they
// were found.
func GetSessionFromContext(c *gin.Context) (*utils.SessionClaims, bool) {
	claims, ok := c.Request.Context().Value(sessionKey).(*utils.SessionClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
