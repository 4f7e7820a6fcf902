package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinettoyage/site-backend/internal/api/router"
	appconfig "github.com/cinettoyage/site-backend/internal/config"
	"github.com/cinettoyage/site-backend/internal/mailer"
	"github.com/cinettoyage/site-backend/internal/observability/metrics"
	"github.com/cinettoyage/site-backend/internal/quotes"
	"github.com/cinettoyage/site-backend/pkg/logging"
)

func main() {
	// Local development reads a .env file; in production the variables
	// come from the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting ci-nettoyage site backend",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	sender := buildSender(cfg, logger)
	quoteMetrics := metrics.NewQuoteMetrics(nil)
	quotesHandler := quotes.NewHandler(sender, cfg.EmailTo, quoteMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		QuotesHandler:      quotesHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildSender wires the email provider selected by configuration.
// "auto" picks SendGrid when an API key is present, then the SMTP relay
// when credentials are present, and otherwise falls back to the stub so
// local development still works. A nil return means the operator chose
// a provider that is not actually configured; the intake endpoint
// reports that as a configuration error per request.
func buildSender(cfg *appconfig.Config, logger *logging.Logger) mailer.Sender {
	sendgridSender := func() *mailer.SendGridSender {
		return mailer.NewSendGridSender(mailer.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	}
	smtpSender := func() *mailer.SMTPSender {
		return mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}, logger)
	}

	switch cfg.EmailProvider {
	case "sendgrid":
		s := sendgridSender()
		if s == nil {
			logger.Error("sendgrid provider selected but SENDGRID_API_KEY is not set")
			return nil
		}
		return s
	case "smtp":
		return smtpSender()
	case "stub":
		return mailer.NewStubSender(logger)
	default:
		if s := sendgridSender(); s != nil {
			logger.Info("email provider auto-selected", "provider", "sendgrid")
			return s
		}
		if cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
			logger.Info("email provider auto-selected", "provider", "smtp")
			return smtpSender()
		}
		logger.Warn("no email provider configured, falling back to stub sender")
		return mailer.NewStubSender(logger)
	}
}
