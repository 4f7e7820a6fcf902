package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/cinettoyage/site-backend/internal/http/middleware"
	"github.com/cinettoyage/site-backend/internal/quotes"
	"github.com/cinettoyage/site-backend/pkg/logging"
	"github.com/cinettoyage/site-backend/web"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	QuotesHandler      *quotes.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Static overrides the embedded site; used in tests.
	Static http.Handler
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

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.QuotesHandler != nil {
		r.Post("/api/send-email", cfg.QuotesHandler.SendQuote)
	}

	// The marketing site itself.
	static := cfg.Static
	if static == nil {
		static = web.Handler()
	}
	r.Handle("/*", static)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
