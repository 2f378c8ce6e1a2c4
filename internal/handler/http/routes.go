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
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Get("/", h.homepage)
	router.Get("/health", h.getHealth)

	// routes without an established session
	router.Get("/register", h.getRegister)
	router.Post("/register", h.postRegister)
	router.Get("/login", h.getLogin)
	router.Post("/login", h.postLogin)

	// session-guarded pages; mutating posts additionally verify the
	// csrf_token form field against the session
	router.Get("/users/{username}", h.getUserProfile)
	router.Get("/users/{username}/notes/add", h.getAddNote)
	router.Get("/notes/{id}/update", h.getEditNote)

	router.With(h.withCSRF).Post("/logout", h.postLogout)
	router.With(h.withCSRF).Post("/users/{username}/delete", h.postDeleteUser)
	router.With(h.withCSRF).Post("/users/{username}/notes/add", h.postAddNote)
	router.With(h.withCSRF).Post("/notes/{id}/update", h.postEditNote)
	router.With(h.withCSRF).Post("/notes/{id}/delete", h.postDeleteNote)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
