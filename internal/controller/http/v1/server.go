package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/result_analysis/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, h *Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      h.Routes(),
		},
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.With(h.Authenticate, h.RequireAdmin).Post("/upload", h.Upload)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)

			r.Get("/logout", h.Logout)
			r.Post("/logout", h.Logout)

			r.Get("/batches", h.Batches)
			r.Get("/semesters/{batch}", h.Semesters)
			r.Get("/courses/{batch}/{semester}", h.Courses)
			r.Get("/visualization/{batch}/{semester}/{course}", h.Visualization)
			r.Get("/reports/{batch}/{semester}/{course}", h.Report)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireAdmin)

				r.Post("/upload", h.Upload)
				r.Get("/uploads", h.Uploads)
			})
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
