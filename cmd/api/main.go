package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/groupe-serrurerie/contact-api/internal/api/router"
	"github.com/groupe-serrurerie/contact-api/internal/captcha"
	appconfig "github.com/groupe-serrurerie/contact-api/internal/config"
	"github.com/groupe-serrurerie/contact-api/internal/contact"
	"github.com/groupe-serrurerie/contact-api/internal/faq"
	"github.com/groupe-serrurerie/contact-api/internal/geo"
	"github.com/groupe-serrurerie/contact-api/internal/ipaddr"
	"github.com/groupe-serrurerie/contact-api/internal/notify"
	"github.com/groupe-serrurerie/contact-api/internal/observability/metrics"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting contact-api server",
		"env", cfg.Env,
		"port", cfg.Port,
		"challenge_enforced", cfg.ChallengeEnforced(),
		"database_configured", cfg.DatabaseConfigured(),
	)

	// Lead store: nil repository keeps the pipeline running in
	// NO_DB_CONFIG mode, matching a deployment without a database.
	var repo contact.Repository
	if cfg.DatabaseConfigured() {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool, continuing without store", "error", err)
		} else {
			defer pool.Close()
			repo = contact.NewPostgresRepository(pool, logger)
		}
	} else {
		logger.Warn("DATABASE_URL not set, submissions will not be persisted")
	}

	verifier := captcha.NewGoogleVerifier(cfg.RecaptchaSecretKey, cfg.RecaptchaVerifyURL, cfg.HTTPClientTimeout, logger)
	if !verifier.Enforced() {
		logger.Warn("RECAPTCHA_SECRET_KEY not set, challenge verification is disabled")
	}

	sender := buildSender(cfg, logger)
	notifier := notify.NewLeadNotifier(sender, cfg.ContactRecipientEmail, logger)

	contactMetrics := metrics.NewContactMetrics(nil)
	service := contact.NewService(repo, verifier, notifier, contactMetrics, logger)

	var lookup *ipaddr.Lookup
	if cfg.IPLookupEnabled {
		lookup = ipaddr.NewLookup(cfg.IPLookupURL, cfg.HTTPClientTimeout, logger)
	}

	routerCfg := &router.Config{
		Logger:              logger,
		ContactHandler:      contact.NewHandler(service, lookup, logger),
		CaptchaHandler:      captcha.NewHandler(verifier, logger),
		GeoHandler:          geo.NewHandler(logger),
		FAQHandler:          faq.NewHandler(),
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		SubmitRatePerSecond: cfg.RateLimitPerSecond,
		SubmitBurst:         cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

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

	// Wait for interrupt signal to gracefully shutdown the server
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

func buildSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger); s != nil {
			return s
		}
		logger.Warn("SENDGRID_API_KEY not set, email notifications disabled")
		return nil
	case "stub":
		return notify.NewStubEmailSender(logger)
	default:
		if s := notify.NewResendSender(notify.ResendConfig{
			APIKey:    cfg.ResendAPIKey,
			BaseURL:   cfg.ResendBaseURL,
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
			Timeout:   cfg.HTTPClientTimeout,
		}, logger); s != nil {
			return s
		}
		logger.Warn("RESEND_API_KEY not set, email notifications disabled")
		return nil
	}
}
