package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type NotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

// Insert appends one dispatch-attempt row. Rows are never updated.
func (r *NotificationLogRepository) Insert(ctx context.Context, entry *domain.NotificationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *NotificationLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.NotificationLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var out []domain.NotificationLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOlderThan removes log rows past the retention window and reports how
// many were deleted.
func (r *NotificationLogRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.NotificationLog{})
	return res.RowsAffected, res.Error
}
