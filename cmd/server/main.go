// @title Wedding Invite API
// @version 1.0
// @description RSVP and invitation API backed by a spreadsheet workbook.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddinginvite/config"
	_ "weddinginvite/docs"
	"weddinginvite/internal/adapters/email"
	"weddinginvite/internal/bootstrap"
	delivery "weddinginvite/internal/delivery/http"
	"weddinginvite/internal/delivery/http/controllers"
	"weddinginvite/internal/repository/workbook"
	"weddinginvite/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()

	families := workbook.NewFamilyRepository(store)
	events := workbook.NewEventRepository(store, families)
	responses := workbook.NewResponseRepository(store, cfg.ResponseSchema)
	configRepo := workbook.NewConfigRepository(store)
	itinerary := workbook.NewItineraryRepository(store)

	if cfg.StoreDriver == config.StoreMemory {
		admin := services.NewAdminService(store, families, cfg.ResponseSchema, cfg.RequestTimeout)
		if err := admin.SetupSheets(ctx); err != nil {
			return fmt.Errorf("setup memory store: %w", err)
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("load email templates: %w", err)
	}

	invitationService := services.NewInvitationService(families, events, responses, configRepo, itinerary, cfg.BaseURL, cfg.RequestTimeout)
	rsvpService := services.NewRSVPService(families, events, responses, services.RSVPServiceOptions{
		Notifier:    services.NewNotificationService(mailer, renderer),
		NotifyEmail: cfg.NotifyEmail,
		RSVPURL:     invitationService.RSVPURL,
	}, logger, cfg.RequestTimeout)

	mux := delivery.NewRouter(
		controllers.NewRSVPController(logger, rsvpService, invitationService),
		controllers.NewSiteController(logger, invitationService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.NewHandler(logger, mux, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "store", cfg.StoreDriver, "schema", cfg.ResponseSchema)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
