package api

import (
	"net/http"

	"github.com/auracanvas/aura-api/internal/analysis"
	"github.com/auracanvas/aura-api/internal/api/handler"
	customMiddleware "github.com/auracanvas/aura-api/internal/api/middleware"
	"github.com/auracanvas/aura-api/internal/config"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/auracanvas/aura-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps carries the store and analyzer implementations selected at startup
type Deps struct {
	SessionRepo domain.SessionRepository
	AuraRepo    domain.AuraRepository
	Artifacts   domain.ArtifactStore
	Analyzer    analysis.Analyzer
	DB          handler.Pinger
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	r.Use(customMiddleware.NewCORS(cfg.CORS).Handler)

	// Initialize services
	sessionService := service.NewSessionService(deps.SessionRepo, cfg.Session.InitialCredits)
	auraService := service.NewAuraService(deps.SessionRepo, deps.AuraRepo, deps.Artifacts, deps.Analyzer)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService, cfg.Session)
	auraHandler := handler.NewAuraHandler(auraService, cfg.Session.CookieName)
	imageHandler := handler.NewImageHandler(deps.Artifacts)

	// Health
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(deps.DB))

	// Session
	r.Post("/session", sessionHandler.Create)
	r.Get("/session", sessionHandler.Get)

	// Analysis (no cookie, no storage)
	r.Post("/analyze", auraHandler.Analyze)

	// Auras
	r.Post("/aura", auraHandler.Create)
	r.Get("/aura/{auraID}", auraHandler.Get)
	r.Get("/auras", auraHandler.List)

	// Images
	r.Get("/image/*", imageHandler.Serve)

	// Payment stubs, kept 501 until the credits flow lands
	r.HandleFunc("/credits", handler.NotImplemented)
	r.HandleFunc("/webhook/stripe", handler.NotImplemented)

	return r
}
