package booking

import (
	"context"

	"wellbook/internal/domain"
)

// BookingRepository defines the data-store operations the receiver needs.
type BookingRepository interface {
	UpdateStatus(ctx context.Context, id int64, status, updatedBy, reason string) error
	GetByIDWithRelations(ctx context.Context, id int64) (*domain.Booking, error)
}

// StatusNotifier receives the updated booking after the status is durable.
// Implementations must not block: the receiver's response never waits on
// notification work.
type StatusNotifier interface {
	BookingStatusChanged(b *domain.Booking, previous, updatedBy, reason string, notifyCustomer, notifyProvider bool)
}
