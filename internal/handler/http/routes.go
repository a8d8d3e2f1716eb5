package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Liveness endpoints live at the root, everything
// else under the configured API prefix.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Route(h.cfg.APIPrefix, func(api chi.Router) {
		// routes without authorization
		api.Post("/auth/login", h.login)

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/verify", h.verify)

			r.Post("/data/save", h.save)
			r.Get("/data/load", h.load)

			r.Route("/directories", func(r chi.Router) {
				r.Get("/", h.listDirectories)
				r.Post("/", h.createDirectory)
				r.Put("/{id}", h.updateDirectory)
				r.Delete("/{id}", h.deleteDirectory)
			})

			r.Route("/states", func(r chi.Router) {
				r.Get("/", h.listStates)
				r.Post("/", h.createState)
				r.Get("/{id}", h.getState)
				r.Put("/{id}", h.updateState)
				r.Delete("/{id}", h.deleteState)
			})
		})
	})

	return router
}
