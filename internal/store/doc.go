// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the account service.
//
// Accounts live in a relational database reached through database/sql with
// either the pgx (PostgreSQL) or sqlite3 driver. Every statement is built with
// squirrel and bound with placeholders; request values are never interpolated
// into SQL text. Opaque session tokens live in a process-wide in-memory map.
package store
