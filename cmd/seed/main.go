package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"wellbook/internal/database"
	"wellbook/internal/domain"
)

// Seeds the schema and the default notification template set. Safe to run
// repeatedly: templates are inserted only when their key is missing.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "wellbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Business{},
		&domain.BusinessMember{},
		&domain.ServiceOffering{},
		&domain.Location{},
		&domain.Booking{},
		&domain.NotificationSettings{},
		&domain.NotificationTemplate{},
		&domain.NotificationLog{},
	); err != nil {
		log.Fatal(err)
	}

	for _, t := range defaultTemplates() {
		var count int64
		if err := db.Model(&domain.NotificationTemplate{}).Where("key = ?", t.Key).Count(&count).Error; err != nil {
			log.Fatal(err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded template %s", t.Key)
	}

	log.Println("seed complete")
}

func defaultTemplates() []domain.NotificationTemplate {
	return []domain.NotificationTemplate{
		{
			Key:      domain.TypeCustomerBookingAccepted,
			IsActive: true,
			Subject:  "Your booking is confirmed",
			HTMLBody: "<p>Hi {{customer_name}},</p><p>Your {{service_name}} appointment with {{business_name}} is confirmed for {{booking_date}} at {{booking_time}}.</p><p>Location: {{location}}</p>",
			TextBody: "Hi {{customer_name}}, your {{service_name}} appointment with {{business_name}} is confirmed for {{booking_date}} at {{booking_time}}. Location: {{location}}",
			SMSBody:  "{{business_name}}: your {{service_name}} appointment is confirmed for {{booking_date}} at {{booking_time}}.",
		},
		{
			Key:      domain.TypeCustomerBookingCompleted,
			IsActive: true,
			Subject:  "Thanks for your visit",
			HTMLBody: "<p>Hi {{customer_name}},</p><p>Your {{service_name}} appointment with {{business_name}} is complete. We hope to see you again soon.</p>",
			TextBody: "Hi {{customer_name}}, your {{service_name}} appointment with {{business_name}} is complete. We hope to see you again soon.",
			SMSBody:  "{{business_name}}: thanks for your visit today!",
		},
		{
			Key:      domain.TypeCustomerBookingReminder,
			IsActive: true,
			Subject:  "Reminder: your appointment tomorrow",
			HTMLBody: "<p>Hi {{customer_name}},</p><p>A reminder that your {{service_name}} appointment with {{business_name}} is tomorrow, {{booking_date}} at {{booking_time}}.</p><p>Location: {{location}}</p>",
			TextBody: "Hi {{customer_name}}, a reminder that your {{service_name}} appointment with {{business_name}} is tomorrow, {{booking_date}} at {{booking_time}}. Location: {{location}}",
			SMSBody:  "Reminder from {{business_name}}: {{service_name}} tomorrow at {{booking_time}}.",
		},
		{
			Key:      domain.TypeBusinessBookingCancelled,
			IsActive: true,
			Subject:  "Booking #{{booking_id}} cancelled",
			HTMLBody: "<p>Booking #{{booking_id}} ({{service_name}} on {{booking_date}} at {{booking_time}}) has been cancelled.</p><p>Reason: {{reason}}</p>",
			TextBody: "Booking #{{booking_id}} ({{service_name}} on {{booking_date}} at {{booking_time}}) has been cancelled. Reason: {{reason}}",
			SMSBody:  "Booking #{{booking_id}} cancelled: {{service_name}} on {{booking_date}} {{booking_time}}.",
		},
		{
			Key:      domain.TypeBusinessBookingRescheduled,
			IsActive: true,
			Subject:  "Booking #{{booking_id}} rescheduled",
			HTMLBody: "<p>Booking #{{booking_id}} ({{service_name}}) has moved from {{original_date}} {{original_time}} to {{booking_date}} at {{booking_time}}.</p>",
			TextBody: "Booking #{{booking_id}} ({{service_name}}) has moved from {{original_date}} {{original_time}} to {{booking_date}} at {{booking_time}}.",
			SMSBody:  "Booking #{{booking_id}} rescheduled to {{booking_date}} {{booking_time}}.",
		},
	}
}
