package notification

import (
	"context"
	"time"

	"wellbook/internal/domain"
)

// SettingsRepository reads and writes per-user notification settings.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.NotificationSettings, error)
	GetOrCreate(ctx context.Context, userID int64) (*domain.NotificationSettings, error)
	Save(ctx context.Context, s *domain.NotificationSettings) error
}

// TemplateRepository looks up active templates by key. A nil template with a
// nil error means "no active template".
type TemplateRepository interface {
	GetActiveByKey(ctx context.Context, key domain.NotificationType) (*domain.NotificationTemplate, error)
}

// LogRepository appends and reads dispatch-attempt rows.
type LogRepository interface {
	Insert(ctx context.Context, entry *domain.NotificationLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.NotificationLog, error)
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// BusinessMemberRepository resolves the operational staff of a business.
type BusinessMemberRepository interface {
	GetMembersByRoles(ctx context.Context, businessID int64, roles ...domain.Role) ([]domain.BusinessMember, error)
}

// BookingSource feeds the reminder job.
type BookingSource interface {
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// EmailSender delivers one email and returns the provider message id.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html, text string) (string, error)
}

// SMSSender delivers one SMS and returns the provider message id.
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// EventPublisher pushes booking status events to live subscribers.
type EventPublisher interface {
	PublishBookingStatus(bookingID int64, status, previous string)
}
