package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/couchplan/internal/prefs"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	prefs  *prefs.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *prefs.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		prefs:  store,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/health", s.handleHealth)
	s.router.Post("/api/v1/plan", s.handlePlan)
	s.router.Post("/api/v1/export", s.handleExport)
	s.router.Get("/api/v1/formats", s.handleFormats)
	s.router.Post("/api/v1/integrations/{target}", s.handleIntegration)
	s.router.Get("/api/v1/prefs", s.handleGetPrefs)

	// Preference writes require the API key; reads do not.
	s.router.With(APIKeyAuth(s.apiKey)).Put("/api/v1/prefs", s.handlePutPrefs)
}
