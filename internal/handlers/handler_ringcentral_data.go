package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/middleware"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/activitydash/activity_dashboard_app/internal/transform"
	"github.com/gin-gonic/gin"
)

// providerDataHandler proxies read-only RingCentral data requests. The
// provider credential travels in the rc_token cookie with every request;
// nothing is cached server-side.
type providerDataHandler struct {
	ringcentralService portssvc.ProviderGatewaySvc
	cfg                *config.Config
}

func newProviderDataHandler(rc portssvc.ProviderGatewaySvc, cfg *config.Config) *providerDataHandler {
	return &providerDataHandler{
		ringcentralService: rc,
		cfg:                cfg,
	}
}

// registerProviderDataRoutes sets up the RingCentral data proxy routes.
// These authenticate by the provider cookie alone: the route gate already
// requires a session cookie to be present, and the handlers never touch
// session state, so the token is not re-verified here.
func registerProviderDataRoutes(rg *gin.Engine, cfg *config.Config, rc portssvc.ProviderGatewaySvc) {
	h := newProviderDataHandler(rc, cfg)

	ringcentral := rg.Group("/api/ringcentral")
	{
		ringcentral.GET("/call-log", h.CallLog)
		ringcentral.GET("/messages", h.Messages)
		ringcentral.GET("/extensions", h.Extensions)
	}

	rg.GET("/api/activity", h.Activity)
}

// credentialFromCookie reads and deserializes the provider credential. It
// returns false after writing the 401 response; no provider I/O happens on
// that path.
func (h *providerDataHandler) credentialFromCookie(c *gin.Context) (domain.ProviderCredential, bool) {
	raw, err := c.Cookie(h.cfg.ProviderCookieName)
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return domain.ProviderCredential{}, false
	}

	var cred domain.ProviderCredential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil || cred.AccessToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return domain.ProviderCredential{}, false
	}
	return cred, true
}

// CallLog godoc
// @Summary Fetch call log
// @Description Returns the trailing 30 days of account call log joined with
// @Description the extension lookup map.
// @Tags ringcentral
// @Produce json
// @Success 200 {object} dto.CallLogResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ringcentral/call-log [get]
func (h *providerDataHandler) CallLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cred, ok := h.credentialFromCookie(c)
	if !ok {
		return
	}

	callLog, err := h.ringcentralService.FetchCallLog(c.Request.Context(), cred)
	if err != nil {
		logger.Error("Provider call log fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch call logs"})
		return
	}

	c.JSON(http.StatusOK, callLog)
}

// Messages godoc
// @Summary Fetch messages
// @Description Returns the trailing 30 days of SMS and pager messages.
// @Tags ringcentral
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ringcentral/messages [get]
func (h *providerDataHandler) Messages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cred, ok := h.credentialFromCookie(c)
	if !ok {
		return
	}

	messages, err := h.ringcentralService.FetchMessages(c.Request.Context(), cred)
	if err != nil {
		logger.Error("Provider message fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Extensions godoc
// @Summary Fetch extensions
// @Description Returns the enabled user-type extensions for the account.
// @Tags ringcentral
// @Produce json
// @Success 200 {object} dto.ExtensionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ringcentral/extensions [get]
func (h *providerDataHandler) Extensions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cred, ok := h.credentialFromCookie(c)
	if !ok {
		return
	}

	extensions, err := h.ringcentralService.FetchExtensions(c.Request.Context(), cred)
	if err != nil {
		logger.Error("Provider extension fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch extensions"})
		return
	}

	c.JSON(http.StatusOK, extensions)
}

// Activity godoc
// @Summary Combined activity feed
// @Description Returns calls and messages merged into one UI-ready feed,
// @Description sorted by timestamp descending.
// @Tags ringcentral
// @Produce json
// @Success 200 {object} dto.ActivityFeedResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activity [get]
func (h *providerDataHandler) Activity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cred, ok := h.credentialFromCookie(c)
	if !ok {
		return
	}

	callLog, err := h.ringcentralService.FetchCallLog(c.Request.Context(), cred)
	if err != nil {
		logger.Error("Provider call log fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch activity"})
		return
	}

	messages, err := h.ringcentralService.FetchMessages(c.Request.Context(), cred)
	if err != nil {
		logger.Error("Provider message fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch activity"})
		return
	}

	records := transform.CombineActivity(callLog, messages)
	c.JSON(http.StatusOK, dto.ActivityFeedResponse{Records: records})
}
