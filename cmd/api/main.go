package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"invitebox/config"
	"invitebox/internal/adapters/email"
	deliveryhttp "invitebox/internal/delivery/http"
	"invitebox/internal/delivery/http/controllers"
	"invitebox/internal/delivery/http/middleware"
	"invitebox/internal/domain"
	"invitebox/internal/repository/fsstore"
	"invitebox/internal/repository/jsonstore"
	"invitebox/internal/repository/postgres"
	"invitebox/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	var invitationRepo domain.InvitationRepository
	var rsvpRepo domain.RSVPRepository
	switch cfg.StorageDriver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		invitationRepo = postgres.NewInvitationRepository(db)
		rsvpRepo = postgres.NewRSVPRepository(db)
		logger.Info("storage ready", "driver", "postgres")
	default:
		store, err := fsstore.New(cfg.DataDir)
		if err != nil {
			logger.Error("open file store", "err", err, "dir", cfg.DataDir)
			os.Exit(1)
		}
		invitationRepo = jsonstore.NewInvitationRepository(store)
		rsvpRepo = jsonstore.NewRSVPRepository(store)
		logger.Info("storage ready", "driver", "file", "dir", cfg.DataDir)
	}

	mailProvider := cfg.Mail.Provider
	if !cfg.Mail.Configured() {
		mailProvider = "noop"
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    mailProvider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		Timeout:     cfg.Mail.SendTimeout,
		SMTP: email.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPass,
			UseTLS:   cfg.Mail.SMTPTLS,
		},
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Mail.SESAccessKeyID,
			SecretAccessKey:    cfg.Mail.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	notifier := services.NewNotificationService(mailer, email.NewTemplateRenderer(), cfg.Mail.ManagerAddress, cfg.Mail.Configured(), logger)
	if !notifier.IsConfigured() {
		logger.Info("mail transport not configured, notifications disabled")
	}

	invitationService := services.NewInvitationService(invitationRepo, rsvpRepo, cfg.ContextTimeout)
	rsvpService := services.NewRSVPService(invitationRepo, rsvpRepo, notifier, logger, cfg.ContextTimeout)

	mux := deliveryhttp.NewRouter(
		controllers.NewInvitationController(logger, invitationService),
		controllers.NewRSVPController(logger, rsvpService),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
