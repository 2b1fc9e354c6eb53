package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type NotificationTemplateRepository struct {
	db *gorm.DB
}

func NewNotificationTemplateRepository(db *gorm.DB) *NotificationTemplateRepository {
	return &NotificationTemplateRepository{db: db}
}

// GetActiveByKey returns the active template for a key, or nil when there is
// none. At most one active row exists per key.
func (r *NotificationTemplateRepository) GetActiveByKey(ctx context.Context, key domain.NotificationType) (*domain.NotificationTemplate, error) {
	var t domain.NotificationTemplate
	err := r.db.WithContext(ctx).
		Where("key = ? AND is_active = ?", key, true).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
