package notification

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wellbook/internal/domain"
	"wellbook/internal/pkg/response"
)

type Handler struct {
	settings SettingsRepository
	logs     LogRepository
}

func NewHandler(settings SettingsRepository, logs LogRepository) *Handler {
	return &Handler{settings: settings, logs: logs}
}

// RegisterRoutes mounts the authenticated user surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications/settings", h.GetSettings)
	rg.PUT("/notifications/settings", h.UpdateSettings)
}

// RegisterAdminRoutes mounts the operational surface.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications/logs", h.ListLogs)
}

func (h *Handler) GetSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	s, err := h.settings.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notification settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": s})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	s, err := h.settings.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notification settings")
		return
	}

	if err := applySettingsUpdate(s, req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quiet hours must be HH:MM")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update notification settings")
		return
	}

	if err := h.settings.Save(c.Request.Context(), s); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save notification settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": s})
}

func (h *Handler) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.logs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notification logs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logs": logs})
}

func applySettingsUpdate(s *domain.NotificationSettings, req UpdateSettingsRequest) error {
	if req.EmailEnabled != nil {
		s.EmailEnabled = *req.EmailEnabled
	}
	if req.SMSEnabled != nil {
		s.SMSEnabled = *req.SMSEnabled
	}

	if req.PerType != nil {
		if s.PerType == nil {
			s.PerType = make(domain.PerTypeToggles)
		}
		for t, toggles := range req.PerType {
			s.PerType[t] = toggles
		}
	}

	if req.QuietHoursEnabled != nil {
		s.QuietHoursEnabled = *req.QuietHoursEnabled
	}
	if req.QuietHoursStart != nil {
		if err := validateClock(*req.QuietHoursStart); err != nil {
			return err
		}
		s.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		if err := validateClock(*req.QuietHoursEnd); err != nil {
			return err
		}
		s.QuietHoursEnd = *req.QuietHoursEnd
	}
	if s.QuietHoursEnabled && (s.QuietHoursStart == "" || s.QuietHoursEnd == "") {
		return ErrValidation
	}

	if req.OverrideEmail != nil {
		s.OverrideEmail = *req.OverrideEmail
	}
	if req.OverridePhone != nil {
		s.OverridePhone = *req.OverridePhone
	}

	return nil
}

func validateClock(v string) error {
	if _, err := time.Parse("15:04", v); err != nil {
		return ErrValidation
	}
	return nil
}
