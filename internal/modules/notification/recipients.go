package notification

import (
	"context"
	"log"

	"wellbook/internal/domain"
)

const addressPlaceholder = "Address to be confirmed"

// customerRecipient derives the customer from the linked profile, falling
// back to guest fields for bookings made without an account.
func customerRecipient(b *domain.Booking) (Recipient, bool) {
	if b.Customer != nil {
		return Recipient{
			UserID: b.Customer.ID,
			Role:   domain.RoleCustomer,
			Name:   b.Customer.FullName,
			Email:  b.Customer.Email,
			Phone:  b.Customer.Phone,
		}, true
	}
	if b.GuestEmail != "" || b.GuestName != "" {
		return Recipient{
			Role:  domain.RoleCustomer,
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
		}, true
	}
	return Recipient{}, false
}

func providerRecipient(b *domain.Booking) (Recipient, bool) {
	if b.Provider == nil {
		return Recipient{}, false
	}
	return Recipient{
		UserID: b.Provider.ID,
		Role:   domain.RoleProvider,
		Name:   b.Provider.FullName,
		Email:  b.Provider.Email,
		Phone:  b.Provider.Phone,
	}, true
}

// businessRecipients expands to every owner and dispatcher of the booking's
// business plus the assigned provider. Those roles need operational
// visibility beyond the single assigned provider.
func (s *Service) businessRecipients(ctx context.Context, b *domain.Booking) []Recipient {
	out := make([]Recipient, 0, 4)
	seen := make(map[int64]bool)

	members, err := s.members.GetMembersByRoles(ctx, b.BusinessID, domain.RoleOwner, domain.RoleDispatcher)
	if err != nil {
		log.Printf("notification: business member lookup failed business_id=%d err=%v", b.BusinessID, err)
		members = nil
	}

	for _, m := range members {
		if m.User == nil || seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true
		out = append(out, Recipient{
			UserID: m.UserID,
			Role:   m.Role,
			Name:   m.User.FullName,
			Email:  m.User.Email,
			Phone:  m.User.Phone,
		})
	}

	if p, ok := providerRecipient(b); ok && !seen[p.UserID] {
		out = append(out, p)
	}

	return out
}

// bookingAddress prefers the business-side location, then the customer-side
// one for mobile visits. Address is cosmetic to the notification content, so
// a missing location yields a placeholder rather than an error.
func bookingAddress(b *domain.Booking) string {
	if b.Location != nil {
		if addr := b.Location.FormatAddress(); addr != "" {
			return addr
		}
	}
	if b.CustomerLocation != nil {
		if addr := b.CustomerLocation.FormatAddress(); addr != "" {
			return addr
		}
	}
	return addressPlaceholder
}
