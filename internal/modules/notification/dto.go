package notification

import "wellbook/internal/domain"

// UpdateSettingsRequest applies partial updates; nil fields keep the stored
// value.
type UpdateSettingsRequest struct {
	EmailEnabled *bool `json:"email_enabled"`
	SMSEnabled   *bool `json:"sms_enabled"`

	PerType map[domain.NotificationType]domain.ChannelToggles `json:"per_type"`

	QuietHoursEnabled *bool   `json:"quiet_hours_enabled"`
	QuietHoursStart   *string `json:"quiet_hours_start"`
	QuietHoursEnd     *string `json:"quiet_hours_end"`

	OverrideEmail *string `json:"override_email"`
	OverridePhone *string `json:"override_phone"`
}
