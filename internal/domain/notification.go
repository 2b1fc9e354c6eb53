package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// NotificationType identifies a template/event pairing.
type NotificationType string

const (
	TypeCustomerBookingAccepted    NotificationType = "customer_booking_accepted"
	TypeCustomerBookingCompleted   NotificationType = "customer_booking_completed"
	TypeCustomerBookingReminder    NotificationType = "customer_booking_reminder"
	TypeBusinessBookingCancelled   NotificationType = "business_booking_cancelled"
	TypeBusinessBookingRescheduled NotificationType = "business_booking_rescheduled"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// ChannelToggles holds per-type channel switches. A type with no entry in
// PerTypeToggles is treated as enabled on both channels.
type ChannelToggles struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// PerTypeToggles maps notification types to channel switches, stored as jsonb.
type PerTypeToggles map[NotificationType]ChannelToggles

// Value implements driver.Valuer.
func (p PerTypeToggles) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *PerTypeToggles) Scan(value interface{}) error {
	if value == nil {
		*p = make(PerTypeToggles)
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for PerTypeToggles")
	}

	result := make(PerTypeToggles)
	if err := json.Unmarshal(b, &result); err != nil {
		return err
	}

	*p = result
	return nil
}

// NotificationSettings is one row per user. Absent rows fall back to
// DefaultNotificationSettings.
type NotificationSettings struct {
	ID     int64 `json:"id" gorm:"primaryKey;column:id"`
	UserID int64 `json:"user_id" gorm:"column:user_id;uniqueIndex"`

	EmailEnabled bool `json:"email_enabled" gorm:"column:email_enabled;default:true"`
	SMSEnabled   bool `json:"sms_enabled" gorm:"column:sms_enabled;default:false"`

	PerType PerTypeToggles `json:"per_type" gorm:"column:per_type;type:jsonb;serializer:json"`

	QuietHoursEnabled bool   `json:"quiet_hours_enabled" gorm:"column:quiet_hours_enabled;default:false"`
	QuietHoursStart   string `json:"quiet_hours_start" gorm:"column:quiet_hours_start"` // "22:00"
	QuietHoursEnd     string `json:"quiet_hours_end" gorm:"column:quiet_hours_end"`     // "06:00"

	// Optional contact overrides; profile values are used when empty.
	OverrideEmail string `json:"override_email,omitempty" gorm:"column:override_email"`
	OverridePhone string `json:"override_phone,omitempty" gorm:"column:override_phone"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (NotificationSettings) TableName() string { return "user_notification_settings" }

// ChannelToggle returns the per-type switch for a channel, defaulting to
// enabled when the type has no entry.
func (s *NotificationSettings) ChannelToggle(t NotificationType, ch Channel) bool {
	if s.PerType == nil {
		return true
	}
	toggles, ok := s.PerType[t]
	if !ok {
		return true
	}
	if ch == ChannelSMS {
		return toggles.SMS
	}
	return toggles.Email
}

// DefaultNotificationSettings mirrors the behavior for users with no
// settings row: email on, SMS off, no quiet hours.
func DefaultNotificationSettings(userID int64) *NotificationSettings {
	return &NotificationSettings{
		UserID:       userID,
		EmailEnabled: true,
		SMSEnabled:   false,
		PerType:      make(PerTypeToggles),
	}
}

// NotificationTemplate is managed externally; at most one active row per key.
type NotificationTemplate struct {
	ID       int64            `json:"id" gorm:"primaryKey;column:id"`
	Key      NotificationType `json:"key" gorm:"column:key;uniqueIndex"`
	IsActive bool             `json:"is_active" gorm:"column:is_active;default:true"`
	Subject  string           `json:"subject" gorm:"column:subject"`
	HTMLBody string           `json:"html_body" gorm:"column:html_body;type:text"`
	TextBody string           `json:"text_body" gorm:"column:text_body;type:text"`
	SMSBody  string           `json:"sms_body" gorm:"column:sms_body;type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NotificationTemplate) TableName() string { return "notification_templates" }

// HasChannelContent reports whether the template defines content for a channel.
func (t *NotificationTemplate) HasChannelContent(ch Channel) bool {
	if ch == ChannelSMS {
		return t.SMSBody != ""
	}
	return t.Subject != "" && (t.HTMLBody != "" || t.TextBody != "")
}

// NotificationLog is an append-only record of one dispatch attempt.
// Rows are written only for attempts that reached a provider call.
type NotificationLog struct {
	ID      int64  `json:"id" gorm:"primaryKey;column:id"`
	EventID string `json:"event_id" gorm:"column:event_id;index"`

	UserID         int64            `json:"user_id,omitempty" gorm:"column:user_id;index"` // 0 for guests
	RecipientRole  Role             `json:"recipient_role" gorm:"column:recipient_role"`
	RecipientEmail string           `json:"recipient_email,omitempty" gorm:"column:recipient_email"`
	RecipientPhone string           `json:"recipient_phone,omitempty" gorm:"column:recipient_phone"`
	Channel        Channel          `json:"channel" gorm:"column:channel"`
	Type           NotificationType `json:"type" gorm:"column:type"`
	Status         DeliveryStatus   `json:"status" gorm:"column:status"`

	MessageID    string `json:"message_id,omitempty" gorm:"column:message_id"`
	ErrorMessage string `json:"error_message,omitempty" gorm:"column:error_message;type:text"`

	Subject  string          `json:"subject,omitempty" gorm:"column:subject"`
	Body     string          `json:"body,omitempty" gorm:"column:body;type:text"`
	Metadata json.RawMessage `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (NotificationLog) TableName() string { return "notification_logs" }
