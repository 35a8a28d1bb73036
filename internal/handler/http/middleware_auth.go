// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It reads the proof from the "Authorization: Bearer <proof>" header only,
// resolves it through the configured [service.IdentityIssuer] and, on
// success, stores the account id and username in the request context and
// records the account as active. Query parameters and bodies are never
// consulted for identity.
//
// Missing, malformed, unknown, forged and expired proofs are all answered
// with the same 401 response.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		proof, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		account, err := h.services.IdentityIssuer.Resolve(ctx, proof)
		if err != nil {
			writeError(w, r, err)
			return
		}

		h.services.ActivityService.Record(account.AccountID)

		log := logger.FromRequest(r).With().Int64("account_id", account.AccountID).Logger()
		ctx = utils.WithAccount(ctx, account.AccountID, account.Username)
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
