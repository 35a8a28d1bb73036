// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account created")
	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.VerifyCredentials(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.IdentityIssuer.Issue(ctx, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account successfully logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.LoginResponse{
		Token:     token.SignedString,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAccountInContext)
		return
	}

	account, err := h.services.AccountService.GetAccount(ctx, accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgNotFound}, http.StatusNotFound)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var creds models.Credentials

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return creds, nil
}
