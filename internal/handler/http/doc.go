// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the account service.
//
// It exposes route wiring, request handlers and middleware. Tracing, access
// logging with latency metrics, response compression, panic recovery,
// request timeouts and bearer authentication are handled here before
// requests reach the service layer. Every error response is a JSON
// [models.ErrorResponse] with a generic message; internal error text never
// leaves this package.
package http
