package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/middleware"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// providerOAuthHandler drives the RingCentral authorization-code flow. Both
// endpoints are browser redirects, not JSON APIs: failures are reported
// through query parameters on the dashboard URL so the UI can surface them.
type providerOAuthHandler struct {
	ringcentralService portssvc.ProviderConnectionSvc
	cfg                *config.Config
}

func newProviderOAuthHandler(rc portssvc.ProviderConnectionSvc, cfg *config.Config) *providerOAuthHandler {
	return &providerOAuthHandler{
		ringcentralService: rc,
		cfg:                cfg,
	}
}

// registerProviderOAuthRoutes sets up the RingCentral OAuth connect and
// callback routes. Both live under /api/auth so the route gate leaves them
// reachable without a session cookie mid-flow.
func registerProviderOAuthRoutes(rg *gin.Engine, cfg *config.Config, rc portssvc.ProviderConnectionSvc) {
	h := newProviderOAuthHandler(rc, cfg)

	auth := rg.Group("/api/auth")
	{
		auth.GET("/ringcentral", h.Connect)
		auth.GET("/callback/ringcentral", h.Callback)
	}
}

// Connect godoc
// @Summary Start RingCentral authorization
// @Description Redirects the browser to RingCentral's authorize endpoint.
// @Tags ringcentral
// @Success 302
// @Router /api/auth/ringcentral [get]
func (h *providerOAuthHandler) Connect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.ringcentralService.AuthorizeURL())
}

// Callback godoc
// @Summary RingCentral authorization callback
// @Description Exchanges the authorization code for token material, stores
// @Description it in the provider cookie and bounces back to the dashboard.
// @Tags ringcentral
// @Success 302
// @Router /api/auth/callback/ringcentral [get]
func (h *providerOAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardURL := h.cfg.AppBaseURL + "/dashboard"

	code := c.Query("code")
	if code == "" {
		logger.Warn("Provider callback arrived without an authorization code")
		c.Redirect(http.StatusFound, dashboardURL+"?error=no_code")
		return
	}

	cred, err := h.ringcentralService.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("Provider code exchange failed", slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, dashboardURL+"?error=auth_failed")
		return
	}

	payload, err := json.Marshal(cred)
	if err != nil {
		logger.Error("Failed to serialize provider credential", slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, dashboardURL+"?error=auth_failed")
		return
	}

	// SetCookie URL-encodes the value, so the JSON payload is cookie-safe.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.ProviderCookieName, string(payload), int(h.cfg.CookieMaxAge.Seconds()), "/", "", h.cfg.IsProduction, true)

	logger.Info("Provider connected")
	c.Redirect(http.StatusFound, dashboardURL+"?connected=true")
}
