package notification

import "wellbook/internal/domain"

type audience int

const (
	audienceCustomer audience = iota
	audienceBusiness
)

type rule struct {
	notifType domain.NotificationType
	audience  audience
}

// rulesFor maps one status-change event to its fan-out rules. Rules are
// independent and not mutually exclusive: a cancelled booking that was also
// rescheduled activates both business-side rules.
func rulesFor(ev StatusChangeEvent) []rule {
	var out []rule

	switch domain.BookingStatus(ev.NewStatus) {
	case domain.BookingConfirmed, domain.BookingAccepted:
		out = append(out, rule{domain.TypeCustomerBookingAccepted, audienceCustomer})
	case domain.BookingCompleted:
		out = append(out, rule{domain.TypeCustomerBookingCompleted, audienceCustomer})
	case domain.BookingCancelled:
		out = append(out, rule{domain.TypeBusinessBookingCancelled, audienceBusiness})
	}

	if ev.Booking != nil && ev.Booking.RescheduleDetected() {
		out = append(out, rule{domain.TypeBusinessBookingRescheduled, audienceBusiness})
	}

	return out
}
