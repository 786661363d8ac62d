package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taiwoajasa245/daily-meditation/internal/meditation"
	"github.com/taiwoajasa245/daily-meditation/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	meditationHandler := meditation.NewMeditationHandler(s.mService, s.logger)

	// List screen; ?day= opens the detail overlay.
	r.Get("/", meditationHandler.PageHandler)
	r.Get("/continue", meditationHandler.ContinueHandler)
	r.Get("/health", s.HealthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		s.loadEntryRoutes(r, meditationHandler)
	})

	return r
}

func (s *Server) loadEntryRoutes(router chi.Router, h meditation.MeditationHandler) {
	router.Get("/entries", h.ListEntriesHandler)
	router.Get("/entries/{day}", h.GetEntryHandler)
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"source":  s.cfg.EntriesSource,
		"entries": s.mService.Entries().Len(),
	}
	if s.db != nil {
		stats := s.db.Health()
		resp["database"] = stats
		if stats["status"] != "up" {
			response.Error(w, http.StatusServiceUnavailable, "Database unavailable", resp)
			return
		}
	}
	response.Success(w, resp, "Success")
}
