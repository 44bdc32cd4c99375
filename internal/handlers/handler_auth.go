package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/middleware"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles login and account maintenance requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the authentication and account maintenance
// routes. Login is rate limited; the update endpoints require a valid
// session cookie.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	sessionAuth := middleware.SessionAuthMiddleware(cfg.AuthCookieName, services.Token)

	auth := rg.Group("/api/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/update-email", sessionAuth, h.UpdateEmail)
		auth.POST("/update-password", sessionAuth, h.UpdatePassword)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and establishes a session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password are required"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// A wrong password and an unknown username look identical here.
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := h.tokenService.IssueToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AuthCookieName, token, int(h.cfg.CookieMaxAge.Seconds()), "/", "", h.cfg.IsProduction, true)

	logger.Info("Login succeeded", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(user), Success: true})
}

// UpdateEmail godoc
// @Summary Update email address
// @Description Replaces the authenticated user's email address.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.UpdateEmailRequest true "New email address"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/update-email [post]
func (h *authHandler) UpdateEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	claims, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A valid email address is required"})
		return
	}

	if err := h.userService.UpdateEmail(c.Request.Context(), userID, req.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdatePassword godoc
// @Summary Update password
// @Description Verifies the current password and stores a new one.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body dto.UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/update-password [post]
func (h *authHandler) UpdatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	claims, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Current password and a new password of at least 6 characters are required"})
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Current password is incorrect"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to update password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
