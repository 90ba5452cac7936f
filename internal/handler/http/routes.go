package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.index)
	router.Get("/api/hello", h.hello)

	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.createUser)
		r.Get("/api/users", h.listUsers)
		r.Post("/api/users/{id}/exercises", h.addExercise)
		r.Get("/api/users/{id}/logs", h.getLog)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
