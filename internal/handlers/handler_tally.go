package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/middleware"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// tallyHandler handles the weekly tally endpoints.
type tallyHandler struct {
	tallyService portssvc.TallySvcFacade
	userService  portssvc.UserSvcFacade
}

func newTallyHandler(ts portssvc.TallySvcFacade, us portssvc.UserSvcFacade) *tallyHandler {
	return &tallyHandler{
		tallyService: ts,
		userService:  us,
	}
}

// registerTallyRoutes sets up the tally routes behind session auth.
func registerTallyRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newTallyHandler(services.Tally, services.User)

	sessionAuth := middleware.SessionAuthMiddleware(cfg.AuthCookieName, services.Token)

	tally := rg.Group("/api/tally", sessionAuth)
	{
		tally.GET("", h.ListWeeks)
		tally.POST("", h.CreateWeek)
		tally.PATCH("/entry", h.PatchEntry)
	}
}

// verifiedUserID resolves the session claims to a user that still exists in
// the store. A session naming a deleted user gets 404, not an empty result.
// Returns false after writing the response.
func (h *tallyHandler) verifiedUserID(c *gin.Context) (int64, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	claims, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	userID, err := claims.UserID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}

	if _, err := h.userService.GetUserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return 0, false
		}
		logger.Error("Failed to verify session user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch tally data"})
		return 0, false
	}
	return userID, true
}

// ListWeeks godoc
// @Summary List tally weeks
// @Description Returns the authenticated user's weeks, oldest first, each
// @Description with seven entries ordered Monday through Sunday.
// @Tags tally
// @Produce json
// @Success 200 {object} dto.ListWeeksResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/tally [get]
func (h *tallyHandler) ListWeeks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.verifiedUserID(c)
	if !ok {
		return
	}

	weeks, err := h.tallyService.ListWeeks(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list tally weeks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch tally data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWeeksResponse(weeks))
}

// CreateWeek godoc
// @Summary Create a tally week
// @Description Creates a week with seven zero-valued entries in one unit.
// @Tags tally
// @Accept json
// @Produce json
// @Param week body dto.CreateWeekRequest true "Week number and date range"
// @Success 200 {object} dto.CreateWeekResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Week number already tracked"
// @Failure 500 {object} ErrorResponse
// @Router /api/tally [post]
func (h *tallyHandler) CreateWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.verifiedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Week number, start date and end date are required"})
		return
	}

	weekID, err := h.tallyService.CreateWeek(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dates must be in YYYY-MM-DD format"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Week already exists"})
		default:
			logger.Error("Failed to create tally week", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create week"})
		}
		return
	}

	logger.Info("Tally week created", slog.Int64("week_id", weekID), slog.Int("week_number", req.WeekNumber))
	c.JSON(http.StatusOK, dto.CreateWeekResponse{Success: true, WeekID: weekID})
}

// PatchEntry godoc
// @Summary Update a tally counter
// @Description Sets one counter on one day's entry to an absolute value.
// @Tags tally
// @Accept json
// @Produce json
// @Param patch body dto.PatchEntryRequest true "Entry id, field name and value"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/tally/entry [patch]
func (h *tallyHandler) PatchEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PatchEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Entry id, field and value are required"})
		return
	}

	if err := h.tallyService.PatchEntry(c.Request.Context(), req.EntryID, req.Field, *req.Value); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown field"})
			return
		}
		logger.Error("Failed to update tally entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
