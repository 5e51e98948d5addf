package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/groupe-serrurerie/contact-api/internal/captcha"
	"github.com/groupe-serrurerie/contact-api/internal/contact"
	"github.com/groupe-serrurerie/contact-api/internal/faq"
	"github.com/groupe-serrurerie/contact-api/internal/geo"
	httpmiddleware "github.com/groupe-serrurerie/contact-api/internal/http/middleware"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	ContactHandler *contact.Handler
	CaptchaHandler *captcha.Handler
	GeoHandler     *geo.Handler
	FAQHandler     *faq.Handler
	MetricsHandler http.Handler

	CORSAllowedOrigins []string

	// Per-IP limit applied to the submission route only.
	SubmitRatePerSecond float64
	SubmitBurst         int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)

	r.Route("/api", func(api chi.Router) {
		api.Route("/contact", func(c chi.Router) {
			c.Get("/", cfg.ContactHandler.Status)
			if cfg.SubmitRatePerSecond > 0 {
				c.With(httpmiddleware.RateLimit(cfg.SubmitRatePerSecond, cfg.SubmitBurst)).
					Post("/", cfg.ContactHandler.Submit)
			} else {
				c.Post("/", cfg.ContactHandler.Submit)
			}
		})

		if cfg.CaptchaHandler != nil {
			api.Post("/verify-recaptcha", cfg.CaptchaHandler.Verify)
		}

		if cfg.GeoHandler != nil {
			api.Get("/departements", cfg.GeoHandler.ListDepartments)
			api.Get("/departements/{key}", cfg.GeoHandler.GetDepartment)
			api.Get("/villes", cfg.GeoHandler.ListCities)
			api.Get("/villes/{slug}", cfg.GeoHandler.GetCity)
		}

		if cfg.FAQHandler != nil {
			api.Get("/faq", cfg.FAQHandler.List)
			api.Get("/faq/{category}", cfg.FAQHandler.ListCategory)
		}
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
