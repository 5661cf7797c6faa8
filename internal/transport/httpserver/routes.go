package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymdesk/internal/config"
	"gymdesk/internal/transport/httpserver/handler"
	"gymdesk/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, session *middleware.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS([]string{cfg.ClientURL}))
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)
		r.Route("/auth", func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Post("/register", handlers.Register)
			r.Post("/login", handlers.Login)
			r.With(session.Middleware).Post("/logout", handlers.Logout)
		})

		// Plan listing is public so the marketing site can show prices.
		r.Get("/plans/all", handlers.ListPlans)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware)

			r.Get("/members/all", handlers.ListMembers)
			r.Post("/members/add", handlers.CreateMember)
			r.Get("/members/{id}", handlers.GetMember)
			r.Put("/members/{id}", handlers.UpdateMember)
			r.Delete("/members/{id}", handlers.DeleteMember)

			r.Post("/plans/create", handlers.CreatePlan)
			r.Put("/plans/{id}", handlers.UpdatePlan)
			r.Delete("/plans/{id}", handlers.DeletePlan)

			r.Post("/payments/add", handlers.AddPayment)
			r.Get("/payments/history", handlers.PaymentHistory)
			r.Get("/payments/revenue", handlers.Revenue)
		})
	})

	return r
}
