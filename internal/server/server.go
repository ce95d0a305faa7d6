package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/internal/logger"
	"github.com/limaJavier/interview-scheduling/internal/metrics"
	"github.com/limaJavier/interview-scheduling/internal/roster"
	"github.com/limaJavier/interview-scheduling/internal/scheduling"
)

// Server is the interview scheduling REST API
type Server struct {
	router     chi.Router
	logger     *zap.Logger
	startTime  time.Time
	repository roster.Repository
	service    *scheduling.Service
	recorder   *metrics.Recorder
}

// New creates a Server with all routes registered. recorder may be nil when metrics are disabled
func New(repository roster.Repository, service *scheduling.Service, recorder *metrics.Recorder, l *zap.Logger) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		logger:     l.With(zap.String("component", "server")),
		startTime:  time.Now(),
		repository: repository,
		service:    service,
		recorder:   recorder,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(logger.Middleware(s.logger))
	r.Use(metricsMiddleware(s.recorder))

	if s.recorder != nil {
		r.Handle("/metrics", s.recorder.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/professors", func(r chi.Router) {
			r.Get("/", s.handleListProfessors)
			r.Post("/", s.handleCreateProfessor)
			r.Delete("/{name}", s.handleDeleteProfessor)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", s.handleListTeams)
			r.Post("/", s.handleCreateTeam)
			r.Delete("/{id}", s.handleDeleteTeam)
		})

		r.Post("/schedule", s.handleSchedule)
	})
}
