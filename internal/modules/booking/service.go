package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wellbook/internal/domain"
)

type Service struct {
	bookings BookingRepository
	notifs   StatusNotifier
}

func NewService(bookings BookingRepository, notifs StatusNotifier) *Service {
	return &Service{bookings: bookings, notifs: notifs}
}

// UpdateStatus persists the new status and returns the booking joined with
// its related records. Any non-empty status string is accepted; there is no
// transition table, and terminal-looking statuses may be overwritten.
// Notification dispatch is detached: its outcome never affects the result.
func (s *Service) UpdateStatus(ctx context.Context, req StatusUpdateRequest) (*domain.Booking, error) {
	if req.BookingID == 0 || req.NewStatus == "" || req.UpdatedBy == "" {
		return nil, ErrValidation
	}

	previous := ""
	if existing, err := s.bookings.GetByIDWithRelations(ctx, req.BookingID); err == nil && existing != nil {
		previous = existing.Status
	}

	if err := s.bookings.UpdateStatus(ctx, req.BookingID, req.NewStatus, req.UpdatedBy, req.Reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByIDWithRelations(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if s.notifs != nil {
		s.notifs.BookingStatusChanged(b, previous, req.UpdatedBy, req.Reason, req.notifyCustomer(), req.notifyProvider())
	}

	return b, nil
}
