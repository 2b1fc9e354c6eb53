package notification

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wellbook/internal/domain"
)

func setupSettingsRouter(h *Handler, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "customer")
	})
	grp := r.Group("/")
	h.RegisterRoutes(grp)
	h.RegisterAdminRoutes(grp)
	return r
}

func TestGetSettings_ReturnsRow(t *testing.T) {
	settings := new(MockSettingsRepository)
	logs := new(MockLogRepository)
	h := NewHandler(settings, logs)

	settings.On("GetOrCreate", mock.Anything, int64(7)).
		Return(domain.DefaultNotificationSettings(7), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications/settings", nil)
	setupSettingsRouter(h, 7).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email_enabled":true`)
	assert.Contains(t, w.Body.String(), `"sms_enabled":false`)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	settings := new(MockSettingsRepository)
	logs := new(MockLogRepository)
	h := NewHandler(settings, logs)

	settings.On("GetOrCreate", mock.Anything, int64(7)).
		Return(domain.DefaultNotificationSettings(7), nil)
	settings.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.NotificationSettings) bool {
		return s.SMSEnabled && s.EmailEnabled
	})).Return(nil)

	body := bytes.NewBufferString(`{"sms_enabled": true}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/notifications/settings", body)
	req.Header.Set("Content-Type", "application/json")
	setupSettingsRouter(h, 7).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	settings.AssertNumberOfCalls(t, "Save", 1)
}

func TestUpdateSettings_InvalidQuietHours(t *testing.T) {
	settings := new(MockSettingsRepository)
	logs := new(MockLogRepository)
	h := NewHandler(settings, logs)

	settings.On("GetOrCreate", mock.Anything, int64(7)).
		Return(domain.DefaultNotificationSettings(7), nil)

	body := bytes.NewBufferString(`{"quiet_hours_enabled": true, "quiet_hours_start": "25:99", "quiet_hours_end": "06:00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/notifications/settings", body)
	req.Header.Set("Content-Type", "application/json")
	setupSettingsRouter(h, 7).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateSettings_QuietHoursEnabledWithoutBounds(t *testing.T) {
	settings := new(MockSettingsRepository)
	logs := new(MockLogRepository)
	h := NewHandler(settings, logs)

	settings.On("GetOrCreate", mock.Anything, int64(7)).
		Return(domain.DefaultNotificationSettings(7), nil)

	body := bytes.NewBufferString(`{"quiet_hours_enabled": true}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/notifications/settings", body)
	req.Header.Set("Content-Type", "application/json")
	setupSettingsRouter(h, 7).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLogs_Recent(t *testing.T) {
	settings := new(MockSettingsRepository)
	logs := new(MockLogRepository)
	h := NewHandler(settings, logs)

	logs.On("ListRecent", mock.Anything, 50).Return([]domain.NotificationLog{
		{EventID: "ev-1", Channel: domain.ChannelEmail, Status: domain.DeliverySent},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications/logs", nil)
	setupSettingsRouter(h, 7).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ev-1")
}
