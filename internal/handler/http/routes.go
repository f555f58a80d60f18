// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes guarded by a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/items", h.createItem)
		r.Get("/items", h.listItems)
		r.Get("/items/list", h.listItems)
		r.Get("/items/{id}", h.getItem)
		r.Put("/items/{id}", h.renameItem)
		r.Post("/items/update", h.updateItem)
		r.Delete("/items/{id}", h.deleteItemByID)
		r.Post("/items/delete", h.deleteItem)
	})

	// the bundled tester page, when a static directory is configured
	if h.staticDir != "" {
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/tester.html", http.StatusFound)
		})
		router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
	}

	return router
}
