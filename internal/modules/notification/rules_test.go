package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wellbook/internal/domain"
)

func TestRulesFor_StatusTable(t *testing.T) {
	cases := []struct {
		status string
		want   []rule
	}{
		{string(domain.BookingConfirmed), []rule{{domain.TypeCustomerBookingAccepted, audienceCustomer}}},
		{string(domain.BookingAccepted), []rule{{domain.TypeCustomerBookingAccepted, audienceCustomer}}},
		{string(domain.BookingCompleted), []rule{{domain.TypeCustomerBookingCompleted, audienceCustomer}}},
		{string(domain.BookingCancelled), []rule{{domain.TypeBusinessBookingCancelled, audienceBusiness}}},
		{string(domain.BookingPending), nil},
		{string(domain.BookingInProgress), nil},
		{string(domain.BookingDeclined), nil},
		{string(domain.BookingNoShow), nil},
		{"some_custom_status", nil},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			ev := StatusChangeEvent{
				Booking:   &domain.Booking{Status: tc.status},
				NewStatus: tc.status,
			}
			assert.Equal(t, tc.want, rulesFor(ev))
		})
	}
}

func TestRulesFor_CancelledAndRescheduled(t *testing.T) {
	orig := time.Date(2026, 4, 18, 10, 0, 0, 0, time.UTC)
	ev := StatusChangeEvent{
		Booking: &domain.Booking{
			Status:              string(domain.BookingCancelled),
			ScheduledAt:         orig.Add(48 * time.Hour),
			OriginalScheduledAt: &orig,
		},
		NewStatus: string(domain.BookingCancelled),
	}

	got := rulesFor(ev)
	assert.Equal(t, []rule{
		{domain.TypeBusinessBookingCancelled, audienceBusiness},
		{domain.TypeBusinessBookingRescheduled, audienceBusiness},
	}, got)
}
