package notification

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellbook/internal/domain"
)

// Service fans one booking event out into preference-aware, per-channel
// dispatch attempts. Delivery is best-effort and at-most-once: failures are
// logged and never retried, and nothing here surfaces back to the caller
// that triggered the event.
type Service struct {
	settings  SettingsRepository
	templates TemplateRepository
	logs      LogRepository
	members   BusinessMemberRepository
	email     EmailSender
	sms       SMSSender
	events    EventPublisher // optional

	now func() time.Time
	wg  sync.WaitGroup
}

func NewService(
	settings SettingsRepository,
	templates TemplateRepository,
	logs LogRepository,
	members BusinessMemberRepository,
	email EmailSender,
	sms SMSSender,
	events EventPublisher,
) *Service {
	return &Service{
		settings:  settings,
		templates: templates,
		logs:      logs,
		members:   members,
		email:     email,
		sms:       sms,
		events:    events,
		now:       time.Now,
	}
}

// BookingStatusChanged hands the event to a tracked background goroutine and
// returns immediately. Implements the booking module's StatusNotifier.
func (s *Service) BookingStatusChanged(b *domain.Booking, previous, updatedBy, reason string, notifyCustomer, notifyProvider bool) {
	ev := StatusChangeEvent{
		Booking:        b,
		NewStatus:      b.Status,
		PreviousStatus: previous,
		UpdatedBy:      updatedBy,
		Reason:         reason,
		NotifyCustomer: notifyCustomer,
		NotifyProvider: notifyProvider,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notification: dispatch panic booking_id=%d err=%v", b.ID, r)
			}
		}()
		s.Dispatch(context.Background(), ev)
	}()
}

// Drain blocks until all in-flight dispatch cycles finish or the context
// expires. Called during server shutdown so background work is not dropped.
func (s *Service) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch runs one full fan-out cycle synchronously. Recipients and
// channels are attempted sequentially; a failure in one never prevents the
// rest.
func (s *Service) Dispatch(ctx context.Context, ev StatusChangeEvent) {
	if ev.Booking == nil {
		return
	}

	if s.events != nil {
		s.events.PublishBookingStatus(ev.Booking.ID, ev.NewStatus, ev.PreviousStatus)
	}

	eventID := uuid.NewString()
	vars := s.templateVars(ev)

	for _, r := range rulesFor(ev) {
		switch r.audience {
		case audienceCustomer:
			if !ev.NotifyCustomer {
				continue
			}
		case audienceBusiness:
			if !ev.NotifyProvider {
				continue
			}
		}

		tmpl, err := s.templates.GetActiveByKey(ctx, r.notifType)
		if err != nil {
			log.Printf("notification: template lookup failed type=%s err=%v", r.notifType, err)
			continue
		}
		if tmpl == nil {
			// No active template means zero attempts and zero log rows.
			log.Printf("notification: no active template type=%s booking_id=%d", r.notifType, ev.Booking.ID)
			continue
		}

		for _, rec := range s.recipientsFor(ctx, ev, r.audience) {
			s.dispatchToRecipient(ctx, eventID, ev, tmpl, rec, vars)
		}
	}
}

// DispatchReminder pushes a next-day reminder for one booking through the
// same gate and dispatcher as status events.
func (s *Service) DispatchReminder(ctx context.Context, b *domain.Booking) {
	ev := StatusChangeEvent{
		Booking:        b,
		NewStatus:      b.Status,
		NotifyCustomer: true,
	}

	tmpl, err := s.templates.GetActiveByKey(ctx, domain.TypeCustomerBookingReminder)
	if err != nil {
		log.Printf("notification: template lookup failed type=%s err=%v", domain.TypeCustomerBookingReminder, err)
		return
	}
	if tmpl == nil {
		return
	}

	rec, ok := customerRecipient(b)
	if !ok {
		return
	}

	s.dispatchToRecipient(ctx, uuid.NewString(), ev, tmpl, rec, s.templateVars(ev))
}

func (s *Service) recipientsFor(ctx context.Context, ev StatusChangeEvent, a audience) []Recipient {
	switch a {
	case audienceBusiness:
		return s.businessRecipients(ctx, ev.Booking)
	default:
		rec, ok := customerRecipient(ev.Booking)
		if !ok {
			// No resolvable customer: skip silently rather than fail loudly.
			return nil
		}
		return []Recipient{rec}
	}
}

// dispatchToRecipient evaluates both channels for one recipient. A log row
// is written if and only if the attempt reached a provider call; gated-out
// channels leave no trace beyond the operational log.
func (s *Service) dispatchToRecipient(ctx context.Context, eventID string, ev StatusChangeEvent, tmpl *domain.NotificationTemplate, rec Recipient, vars map[string]string) {
	var settings *domain.NotificationSettings
	if rec.UserID != 0 {
		var err error
		settings, err = s.settings.GetByUserID(ctx, rec.UserID)
		if err != nil {
			log.Printf("notification: settings lookup failed user_id=%d err=%v", rec.UserID, err)
			settings = nil
		}
	}

	now := s.now()

	if channelEligible(settings, tmpl.Key, domain.ChannelEmail, now) && tmpl.HasChannelContent(domain.ChannelEmail) {
		if to := contactFor(settings, rec, domain.ChannelEmail); to != "" {
			s.sendEmail(ctx, eventID, ev, tmpl, rec, to, vars)
		}
	}

	if channelEligible(settings, tmpl.Key, domain.ChannelSMS, now) && tmpl.HasChannelContent(domain.ChannelSMS) {
		if to := contactFor(settings, rec, domain.ChannelSMS); to != "" {
			s.sendSMS(ctx, eventID, ev, tmpl, rec, to, vars)
		}
	}
}

func (s *Service) sendEmail(ctx context.Context, eventID string, ev StatusChangeEvent, tmpl *domain.NotificationTemplate, rec Recipient, to string, vars map[string]string) {
	subject := Render(tmpl.Subject, vars)
	html := Render(tmpl.HTMLBody, vars)
	text := Render(tmpl.TextBody, vars)

	entry := &domain.NotificationLog{
		EventID:        eventID,
		UserID:         rec.UserID,
		RecipientRole:  rec.Role,
		RecipientEmail: to,
		Channel:        domain.ChannelEmail,
		Type:           tmpl.Key,
		Subject:        subject,
		Body:           text,
		Metadata:       eventMetadata(ev),
	}

	id, err := s.email.Send(ctx, to, subject, html, text)
	if err != nil {
		log.Printf("notification: email send failed to=%s type=%s err=%v", to, tmpl.Key, err)
		entry.Status = domain.DeliveryFailed
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = domain.DeliverySent
		entry.MessageID = id
	}

	s.writeLog(ctx, entry)
}

func (s *Service) sendSMS(ctx context.Context, eventID string, ev StatusChangeEvent, tmpl *domain.NotificationTemplate, rec Recipient, to string, vars map[string]string) {
	body := Render(tmpl.SMSBody, vars)

	entry := &domain.NotificationLog{
		EventID:        eventID,
		UserID:         rec.UserID,
		RecipientRole:  rec.Role,
		RecipientPhone: to,
		Channel:        domain.ChannelSMS,
		Type:           tmpl.Key,
		Body:           body,
		Metadata:       eventMetadata(ev),
	}

	id, err := s.sms.Send(ctx, to, body)
	if err != nil {
		log.Printf("notification: sms send failed to=%s type=%s err=%v", to, tmpl.Key, err)
		entry.Status = domain.DeliveryFailed
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = domain.DeliverySent
		entry.MessageID = id
	}

	s.writeLog(ctx, entry)
}

// writeLog is best-effort: a logging failure must not block the remaining
// channels or recipients.
func (s *Service) writeLog(ctx context.Context, entry *domain.NotificationLog) {
	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Printf("notification: log write failed event_id=%s channel=%s err=%v", entry.EventID, entry.Channel, err)
	}
}

func (s *Service) templateVars(ev StatusChangeEvent) map[string]string {
	b := ev.Booking

	vars := map[string]string{
		"booking_id":   strconv.FormatInt(b.ID, 10),
		"booking_date": b.ScheduledAt.Format("Monday, January 2, 2006"),
		"booking_time": b.ScheduledAt.Format("15:04"),
		"status":       ev.NewStatus,
		"reason":       ev.Reason,
		"location":     bookingAddress(b),
	}

	if rec, ok := customerRecipient(b); ok {
		vars["customer_name"] = rec.Name
	}
	if b.Provider != nil {
		vars["provider_name"] = b.Provider.FullName
	}
	if b.Business != nil {
		vars["business_name"] = b.Business.Name
	}
	if b.Service != nil {
		vars["service_name"] = b.Service.Name
	}
	if b.OriginalScheduledAt != nil {
		vars["original_date"] = b.OriginalScheduledAt.Format("Monday, January 2, 2006")
		vars["original_time"] = b.OriginalScheduledAt.Format("15:04")
	}

	return vars
}

func eventMetadata(ev StatusChangeEvent) json.RawMessage {
	meta := map[string]any{
		"booking_id": ev.Booking.ID,
		"new_status": ev.NewStatus,
	}
	if ev.PreviousStatus != "" {
		meta["previous_status"] = ev.PreviousStatus
	}
	if ev.UpdatedBy != "" {
		meta["updated_by"] = ev.UpdatedBy
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	return raw
}
