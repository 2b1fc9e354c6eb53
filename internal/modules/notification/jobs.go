package notification

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReminderJob dispatches next-day booking reminders through the pipeline.
type ReminderJob struct {
	bookings BookingSource
	notifier *Service
}

func NewReminderJob(bookings BookingSource, notifier *Service) *ReminderJob {
	return &ReminderJob{bookings: bookings, notifier: notifier}
}

func (j *ReminderJob) Run(ctx context.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	bookings, err := j.bookings.ListScheduledBetween(ctx, from, to)
	if err != nil {
		log.Printf("reminder: booking scan failed err=%v", err)
		return
	}

	log.Printf("reminder: processing %d upcoming bookings", len(bookings))
	for i := range bookings {
		j.notifier.DispatchReminder(ctx, &bookings[i])
	}
}

// CleanupJob trims notification log rows past the retention window.
type CleanupJob struct {
	logs      LogRepository
	retention time.Duration
}

func NewCleanupJob(logs LogRepository, retentionDays int) *CleanupJob {
	return &CleanupJob{
		logs:      logs,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func (j *CleanupJob) Run(ctx context.Context) {
	deleted, err := j.logs.DeleteOlderThan(ctx, j.retention)
	if err != nil {
		log.Printf("cleanup: notification log retention failed err=%v", err)
		return
	}
	log.Printf("cleanup: deleted %d notification log rows older than %v", deleted, j.retention)
}

// Scheduler owns the cron entries for both jobs.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(reminderSpec, cleanupSpec string, reminder *ReminderJob, cleanup *CleanupJob) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(reminderSpec, func() {
		reminder.Run(context.Background())
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cleanupSpec, func() {
		cleanup.Run(context.Background())
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("notification scheduler started")
}

// Stop halts scheduling and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
