package notification

import "wellbook/internal/domain"

// StatusChangeEvent carries everything the dispatch cycle needs about one
// booking status transition.
type StatusChangeEvent struct {
	Booking        *domain.Booking
	NewStatus      string
	PreviousStatus string
	UpdatedBy      string
	Reason         string
	NotifyCustomer bool
	NotifyProvider bool
}

// Recipient is assembled transiently per dispatch cycle; it is never
// persisted. UserID is 0 for guest bookings.
type Recipient struct {
	UserID int64
	Role   domain.Role
	Name   string
	Email  string
	Phone  string
}
