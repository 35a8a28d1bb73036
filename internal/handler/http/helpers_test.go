// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

const (
	testSignKey = "0123456789abcdef0123456789abcdef"
	testVersion = "1.2.3"
)

type testEnv struct {
	router   *chi.Mux
	services *service.Services
	metrics  *metrics.Metrics
}

// newTestEnv wires the full stack over a file-backed sqlite database in a
// temporary directory.
func newTestEnv(t *testing.T, tokenMode string) *testEnv {
	t.Helper()

	db, err := store.NewConnect(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "accounts.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenMode:        tokenMode,
			TokenSignKey:     testSignKey,
			TokenIssuer:      config.DefaultTokenIssuer,
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          testVersion,
		},
		Server: config.Server{
			HTTPAddress:    ":0",
			RequestTimeout: 5 * time.Second,
		},
	}

	m := metrics.New()
	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, m, logger.Nop())
	require.NoError(t, err)

	return &testEnv{
		router:   NewHandler(services, m, cfg.Server, logger.Nop()).Init(),
		services: services,
		metrics:  m,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) register(t *testing.T, username, password string) models.Account {
	t.Helper()

	rec := e.do(t, http.MethodPost, routeRegister, models.Credentials{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var account models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	return account
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, routeLogin, models.Credentials{Username: username, Password: password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": utils.BearerHeader(token)}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}
