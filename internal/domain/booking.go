package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingAccepted   BookingStatus = "accepted"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDeclined   BookingStatus = "declined"
	BookingNoShow     BookingStatus = "no_show"
)

// Booking is a single scheduled service engagement. Status is stored as a
// plain string: the receiver persists whatever the caller sends, and the
// known values above only drive which notifications fire.
type Booking struct {
	ID     int64  `json:"id" gorm:"primaryKey;column:id"`
	Status string `json:"status" gorm:"column:status"`

	ScheduledAt         time.Time  `json:"scheduled_at" gorm:"column:scheduled_at"`
	OriginalScheduledAt *time.Time `json:"original_scheduled_at,omitempty" gorm:"column:original_scheduled_at"`
	Rescheduled         bool       `json:"rescheduled" gorm:"column:rescheduled"`

	CustomerID *int64 `json:"customer_id,omitempty" gorm:"column:customer_id"`
	ProviderID *int64 `json:"provider_id,omitempty" gorm:"column:provider_id"`
	BusinessID int64  `json:"business_id" gorm:"column:business_id"`
	ServiceID  int64  `json:"service_id" gorm:"column:service_id"`

	// Business-side location, or the customer's own address for mobile visits.
	LocationID         *int64 `json:"location_id,omitempty" gorm:"column:location_id"`
	CustomerLocationID *int64 `json:"customer_location_id,omitempty" gorm:"column:customer_location_id"`

	// Guest fields for bookings made without an account.
	GuestName  string `json:"guest_name,omitempty" gorm:"column:guest_name"`
	GuestEmail string `json:"guest_email,omitempty" gorm:"column:guest_email"`
	GuestPhone string `json:"guest_phone,omitempty" gorm:"column:guest_phone"`

	StatusUpdatedBy string `json:"status_updated_by,omitempty" gorm:"column:status_updated_by"`
	StatusReason    string `json:"status_reason,omitempty" gorm:"column:status_reason;type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer         *User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Provider         *User            `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Business         *Business        `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Service          *ServiceOffering `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Location         *Location        `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	CustomerLocation *Location        `json:"customer_location,omitempty" gorm:"foreignKey:CustomerLocationID"`
}

func (Booking) TableName() string { return "bookings" }

// RescheduleDetected reports whether the booking has been moved from its
// original slot, either via the explicit flag or a date/time mismatch.
func (b *Booking) RescheduleDetected() bool {
	if b.Rescheduled {
		return true
	}
	return b.OriginalScheduledAt != nil && !b.OriginalScheduledAt.Equal(b.ScheduledAt)
}
