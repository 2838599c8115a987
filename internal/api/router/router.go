package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lumident/clinic-platform/internal/admin"
	"github.com/lumident/clinic-platform/internal/appointments"
	"github.com/lumident/clinic-platform/internal/http/handlers"
	httpmiddleware "github.com/lumident/clinic-platform/internal/http/middleware"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	SceneHandler        *handlers.SceneHandler
	FormsHandler        *handlers.FormsHandler
	AppointmentsHandler *appointments.Handler
	AdminHandler        *admin.Handler
	AdminAuthSecret     string
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
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

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		public.Route("/api", func(api chi.Router) {
			if cfg.SceneHandler != nil {
				api.Get("/scene", cfg.SceneHandler.GetScene)
				api.Get("/scene/timeline", cfg.SceneHandler.GetTimeline)
			}
			if cfg.FormsHandler != nil {
				api.Post("/bookings", cfg.FormsHandler.SubmitBooking)
				api.Post("/contact", cfg.FormsHandler.SubmitContact)
				api.Get("/contact-info", cfg.FormsHandler.GetContactInfo)
			}
			if cfg.AppointmentsHandler != nil {
				api.HandleFunc("/process-booking", cfg.AppointmentsHandler.ProcessBooking)
			}
		})
	})

	// Admin dashboard routes (protected by HMAC JWT)
	if cfg.AdminHandler != nil {
		r.Route("/admin", func(adminRoute chi.Router) {
			adminRoute.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			adminRoute.Get("/submissions", cfg.AdminHandler.List)
			adminRoute.Get("/submissions/{id}", cfg.AdminHandler.Get)
			adminRoute.Delete("/submissions/{id}", cfg.AdminHandler.Delete)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
