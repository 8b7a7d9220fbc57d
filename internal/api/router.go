package api

import (
	"net/http"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/portfolio"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(service *portfolio.Service, logger logger.Logger) http.Handler {
	h := &handlers{
		service: service,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/trades", h.createTrade)
			r.Get("/trades", h.listTrades)
			r.Get("/portfolio", h.getPortfolio)
			r.Get("/analytics/portfolio", h.getAnalytics)
		})
	})

	return r
}
