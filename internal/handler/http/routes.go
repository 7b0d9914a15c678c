package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET    /metrics
//	GET    /api/v1/version
//	GET    /api/v1/health
//	POST   /api/v1/customers          register, returns an access token
//	POST   /api/v1/auth/login         rate limited
//	GET    /api/v1/customers          bearer token required
//	GET    /api/v1/customers/{id}     bearer token required
//	PUT    /api/v1/customers/{id}     bearer token required
//	DELETE /api/v1/customers/{id}     bearer token required
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getVersion)
		r.Get("/health", h.getHealth)
		r.Post("/customers", h.registerCustomer)
		r.With(h.withLoginRateLimit).Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/customers", h.listCustomers)
			r.Get("/customers/{id}", h.getCustomer)
			r.Put("/customers/{id}", h.updateCustomer)
			r.Delete("/customers/{id}", h.deleteCustomer)
		})
	})

	return router
}
