package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wellbook/internal/config"
	"wellbook/internal/database"
	"wellbook/internal/middleware"
	"wellbook/internal/modules/booking"
	"wellbook/internal/modules/notification"
	"wellbook/internal/modules/stream"
	jwtsvc "wellbook/internal/pkg/jwt"
	"wellbook/internal/pkg/mailer"
	"wellbook/internal/pkg/sms"
	"wellbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	settingsRepo := repository.NewNotificationSettingsRepository(db)
	templateRepo := repository.NewNotificationTemplateRepository(db)
	logRepo := repository.NewNotificationLogRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	emailSender := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	smsSender := sms.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	hub := stream.NewHub()

	notifier := notification.NewService(
		settingsRepo,
		templateRepo,
		logRepo,
		businessRepo,
		emailSender,
		smsSender,
		hub,
	)
	notificationHandler := notification.NewHandler(settingsRepo, logRepo)

	bookingService := booking.NewService(bookingRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	streamHandler := stream.NewHandler(hub, j)

	scheduler, err := notification.NewScheduler(
		cfg.ReminderCronSpec,
		cfg.CleanupCronSpec,
		notification.NewReminderJob(bookingRepo, notifier),
		notification.NewCleanupJob(logRepo, cfg.LogRetentionDays),
	)
	if err != nil {
		log.Fatal(err)
	}
	scheduler.Start()

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	streamHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			notificationHandler.RegisterRoutes(protected)

			operators := protected.Group("/")
			operators.Use(middleware.RequireRole("admin", "owner", "dispatcher", "provider"))
			{
				bookingHandler.RegisterRoutes(operators)
			}

			admins := protected.Group("/")
			admins.Use(middleware.RequireRole("admin"))
			{
				notificationHandler.RegisterAdminRoutes(admins)
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Printf("listening on :%s", cfg.Port)

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	scheduler.Stop()

	// Let in-flight notification dispatch finish instead of dropping it.
	if err := notifier.Drain(shutdownCtx); err != nil {
		log.Printf("notification drain: %v", err)
	}

	log.Println("bye")
}
