package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type NotificationSettingsRepository struct {
	db *gorm.DB
}

func NewNotificationSettingsRepository(db *gorm.DB) *NotificationSettingsRepository {
	return &NotificationSettingsRepository{db: db}
}

// GetByUserID returns the settings row, or nil when the user has none.
func (r *NotificationSettingsRepository) GetByUserID(ctx context.Context, userID int64) (*domain.NotificationSettings, error) {
	var s domain.NotificationSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetOrCreate lazily materializes a defaults row on first read. A concurrent
// insert loses the unique-index race and re-fetches.
func (r *NotificationSettingsRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.NotificationSettings, error) {
	existing, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	s := domain.DefaultNotificationSettings(userID)
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return r.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return s, nil
}

func (r *NotificationSettingsRepository) Save(ctx context.Context, s *domain.NotificationSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
