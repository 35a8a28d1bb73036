// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/models"
)

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/user/register":
			var creds models.Credentials
			_ = json.NewDecoder(r.Body).Decode(&creds)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Account{AccountID: 1, Username: creds.Username, Email: creds.Email})
		case "/api/user/login":
			var creds models.Credentials
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != "secret-pass" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "unauthorized"})
				return
			}
			w.Header().Set("Authorization", "Bearer proof-123")
			_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "proof-123", TokenType: "Bearer"})
		case "/api/user/profile":
			if r.Header.Get("Authorization") != "Bearer proof-123" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "unauthorized"})
				return
			}
			_ = json.NewEncoder(w).Encode(models.Account{AccountID: 1, Username: "alice"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runClient(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Register(t *testing.T) {
	srv := newFakeServer(t)

	code, stdout, _ := runClient(t, "secret-pass\n", "-a", srv.URL, "register", "-u", "alice", "-e", "alice@example.com")

	require.Equal(t, 0, code)
	var account models.Account
	require.NoError(t, json.Unmarshal([]byte(stdout), &account))
	assert.Equal(t, "alice", account.Username)
}

func TestRun_LoginThenProfile(t *testing.T) {
	srv := newFakeServer(t)

	code, stdout, _ := runClient(t, "secret-pass\n", "-a", srv.URL, "login", "-u", "alice")
	require.Equal(t, 0, code)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &login))
	assert.Equal(t, "proof-123", login.Token)

	code, stdout, _ = runClient(t, "", "-a", srv.URL, "profile", "-token", login.Token)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"username": "alice"`)
}

func TestRun_ProfileTokenFromEnv(t *testing.T) {
	srv := newFakeServer(t)
	t.Setenv(tokenEnv, "proof-123")

	code, stdout, _ := runClient(t, "", "-a", srv.URL, "profile")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"id": 1`)
}

func TestRun_LoginFailureGoesToStderr(t *testing.T) {
	srv := newFakeServer(t)

	code, stdout, stderr := runClient(t, "wrong\n", "-a", srv.URL, "login", "-u", "alice")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unauthorized")
	assert.NotContains(t, stderr, "wrong")
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runClient(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage")

	code, _, _ = runClient(t, "", "-a", "http://localhost:1", "delete")
	assert.Equal(t, 2, code)
}
