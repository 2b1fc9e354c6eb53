package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// UpdateStatus persists the new status onto the booking row. Returns
// gorm.ErrRecordNotFound when no row matches.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status, updatedBy, reason string) error {
	updates := map[string]any{
		"status":            status,
		"status_updated_by": updatedBy,
		"updated_at":        time.Now(),
	}
	if reason != "" {
		updates["status_reason"] = reason
	}

	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(updates)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByIDWithRelations fetches the booking joined with customer, provider,
// business, service and both locations. To-one relations come back as a
// single optional record each.
func (r *BookingRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Provider").
		Preload("Business").
		Preload("Service").
		Preload("Location").
		Preload("CustomerLocation").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// ListScheduledBetween returns upcoming bookings in the window, for the
// reminder job. Only statuses that still expect the visit are included.
func (r *BookingRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Provider").
		Preload("Business").
		Preload("Service").
		Preload("Location").
		Preload("CustomerLocation").
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Where("status IN ?", []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
			string(domain.BookingAccepted),
		}).
		Order("scheduled_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
