// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first errors.Is match wins. Every
// authentication failure collapses into one status and one message.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, msgUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, msgUnauthorized},
	{service.ErrAuth, http.StatusUnauthorized, msgUnauthorized},
	{service.ErrDuplicateAccount, http.StatusConflict, msgAccountExists},
	{service.ErrAccountNotFound, http.StatusNotFound, msgAccountNotFound},
	{store.ErrStorage, http.StatusInternalServerError, msgInternalError},
}

// statusFromError returns the HTTP status and client message for err.
// Unknown errors are internal server errors.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err with the request logger and writes the mapped status
// with a generic JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if w.Header().Get("WWW-Authenticate") == "" && status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="account-service"`)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
