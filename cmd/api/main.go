package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-manager/config"
	_ "smart-task-manager/docs" // Swagger docs
	"smart-task-manager/internal/digest"
	"smart-task-manager/internal/httpserver"
	"smart-task-manager/internal/interpreter"
	"smart-task-manager/internal/middleware"
	reminderHTTP "smart-task-manager/internal/reminder/delivery/http"
	reminderUC "smart-task-manager/internal/reminder/usecase"
	taskHTTP "smart-task-manager/internal/task/delivery/http"
	"smart-task-manager/internal/task/repository/sqlite"
	taskUC "smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/brevo"
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/gcalendar"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/nlp"
	"smart-task-manager/pkg/scheduler"
	"smart-task-manager/pkg/textcat"
)

// @title       Smart Task Manager API
// @description Natural-language task management with email reminders and workload analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
		return
	}
	defer db.Close()

	taskRepo := sqlite.New(logger, db)

	// 4. Interpretation components
	dateParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	classifier := textcat.NewClassifier(cfg.Classifier.ModelPath, cfg.Classifier.VocabPath)
	if classifier.ModelLoaded() {
		logger.Info(ctx, "Category model loaded")
	} else {
		logger.Info(ctx, "Category model not available, using keyword rules")
	}

	interp := interpreter.New(logger, classifier, dateParser, nlp.NewExtractor())

	// 5. Task domain
	tUC := taskUC.New(logger, interp, taskRepo)
	taskHandler := taskHTTP.New(logger, tUC)

	// 6. Reminder domain (optional, needs a Brevo key)
	var reminderHandler reminderHTTP.Handler

	location, locErr := time.LoadLocation(cfg.Timezone)
	if locErr != nil {
		location = time.Local
	}
	sched := scheduler.New(location)

	if cfg.Brevo.APIKey != "" {
		mailer := brevo.NewClient(cfg.Brevo.APIKey)

		var calendarClient *gcalendar.Client
		if cfg.GoogleCalendar.CredentialsPath != "" {
			calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
			if err != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			} else {
				logger.Info(ctx, "Google Calendar initialized")
			}
		}

		rUC := reminderUC.New(logger, taskRepo, mailer, sched, calendarClient, reminderUC.Config{
			SenderEmail:        cfg.Brevo.SenderEmail,
			SenderName:         cfg.Brevo.SenderName,
			DefaultRecipient:   cfg.Reminder.DefaultRecipient,
			DefaultLeadMinutes: cfg.Reminder.DefaultLeadMinutes,
			CalendarID:         cfg.GoogleCalendar.CalendarID,
			Timezone:           cfg.Timezone,
		})
		reminderHandler = reminderHTTP.New(logger, rUC)

		// 7. Daily digest
		if cfg.Digest.Enabled && cfg.Digest.Recipient != "" {
			digestSvc := digest.New(logger, taskRepo, mailer, digest.Config{
				Recipient:   cfg.Digest.Recipient,
				SenderEmail: cfg.Brevo.SenderEmail,
				SenderName:  cfg.Brevo.SenderName,
			})

			if _, err := sched.ScheduleDaily(cfg.Digest.Time, func() {
				runCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()
				if err := digestSvc.Run(runCtx); err != nil {
					logger.Errorf(runCtx, "Daily digest failed: %v", err)
				}
			}); err != nil {
				logger.Errorf(ctx, "Invalid digest time %q: %v", cfg.Digest.Time, err)
			} else {
				logger.Infof(ctx, "Daily digest scheduled at %s", cfg.Digest.Time)
			}
		}
	} else {
		logger.Warn(ctx, "BREVO_API_KEY missing, reminder and digest features disabled")
	}

	sched.Start()
	defer sched.Stop()

	// 8. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger),
		TaskHandler:     taskHandler,
		ReminderHandler: reminderHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
