// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account service business logic.
//
// AccountService owns the credential lifecycle: it validates and hashes
// secrets on registration and verifies them on login without revealing
// whether the username exists. IdentityIssuer turns a verified account into
// an identity proof and resolves proofs back to accounts; two variants
// exist, a stateless HS256 signed-claim issuer and an opaque random token
// issuer backed by the process-wide session storage. ActivityService batches
// last-activity timestamps for the background flusher.
package service
