package notification

import (
	"time"

	"wellbook/internal/domain"
)

// channelEligible applies the master toggle, the per-type toggle and quiet
// hours. A nil settings row means defaults: email on, SMS off, no quiet
// hours. Template and contact checks happen separately in the dispatcher.
func channelEligible(s *domain.NotificationSettings, t domain.NotificationType, ch domain.Channel, now time.Time) bool {
	if s == nil {
		return ch == domain.ChannelEmail
	}

	switch ch {
	case domain.ChannelSMS:
		if !s.SMSEnabled {
			return false
		}
	default:
		if !s.EmailEnabled {
			return false
		}
	}

	if !s.ChannelToggle(t, ch) {
		return false
	}

	// Quiet hours suppress every notification type while active.
	if s.QuietHoursEnabled && inQuietHours(s.QuietHoursStart, s.QuietHoursEnd, now) {
		return false
	}

	return true
}

// inQuietHours compares the current time of day as "HH:MM" against the
// stored bounds. A start later than the end is an overnight window that
// wraps past midnight. Bounds are inclusive.
func inQuietHours(start, end string, now time.Time) bool {
	if start == "" || end == "" {
		return false
	}
	cur := now.Format("15:04")
	if start > end {
		return cur >= start || cur <= end
	}
	return cur >= start && cur <= end
}

// contactFor resolves the channel address with the settings override taking
// priority over the profile value.
func contactFor(s *domain.NotificationSettings, rec Recipient, ch domain.Channel) string {
	if ch == domain.ChannelSMS {
		if s != nil && s.OverridePhone != "" {
			return s.OverridePhone
		}
		return rec.Phone
	}
	if s != nil && s.OverrideEmail != "" {
		return s.OverrideEmail
	}
	return rec.Email
}
