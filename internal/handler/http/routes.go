// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths.
const (
	routeRegister = "/api/user/register"
	routeLogin    = "/api/user/login"
	routeProfile  = "/api/user/profile"
	routeVersion  = "/api/version"
	routeMetrics  = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		withGZip,
		middleware.Recoverer,
		middleware.Timeout(h.requestTimeout),
	)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(routeRegister, h.register)
		r.Post(routeLogin, h.login)
		r.Get(routeVersion, h.getServerVersion)
		r.Get(routeMetrics, h.metrics.Handler().ServeHTTP)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(routeProfile, h.profile)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
