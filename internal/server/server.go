package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"focusd/internal/logging"
	"focusd/internal/ports"
	"focusd/internal/services"
)

// Deps holds the collaborators the HTTP surface is wired with
type Deps struct {
	Auth     ports.TokenAuthenticator
	Limiter  *RateLimiter
	Recorder *services.RecorderService
	Stats    *services.StatsService
	Tasks    *services.TaskService
}

// Server is the focusd HTTP server
type Server struct {
	srv *http.Server
}

// New creates a Server listening on addr with all routes wired
func New(addr string, deps Deps) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(deps.Auth))
		if deps.Limiter != nil {
			r.Use(deps.Limiter.Middleware)
		}

		r.Post("/session-complete", completeSession(deps.Recorder))
		r.Get("/stats", getStats(deps.Stats))
		r.Get("/history", getHistory(deps.Stats))

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", listTasks(deps.Tasks))
			r.Post("/", createTask(deps.Tasks))
			r.Patch("/{id}", updateTask(deps.Tasks))
			r.Delete("/{id}", deleteTask(deps.Tasks))
		})
	})

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// ListenAndServe blocks serving requests until Shutdown or failure
func (s *Server) ListenAndServe() error {
	logging.Logger.Info("http server listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// requestLogger logs one line per request through the focusd logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}
