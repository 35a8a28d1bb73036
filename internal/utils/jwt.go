// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-account-service/models"
)

var (
	ErrInvalidJWTParams  = errors.New("invalid params for generating JWT token")
	ErrInvalidJWTSubject = errors.New("invalid JWT subject")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// All parameters are required. Returns [ErrInvalidJWTParams] if any of them
// are empty or zero.
func GenerateJWTToken(issuer string, accountID int64, issuedAt time.Time, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || len(signKey) == 0 || issuedAt.IsZero() {
		return models.Token{}, ErrInvalidJWTParams
	}

	expiresAt := issuedAt.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	exp := expiresAt.Truncate(time.Second)
	return models.Token{
		SignedString: tokenString,
		AccountID:    accountID,
		ExpiresAt:    &exp,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns the account id
// held in its subject.
//
// Validation includes:
//   - HS256 as the only accepted algorithm
//   - signature verification with signKey
//   - strict base64url decoding of every segment
//   - issuer (iss) equal to tokenIssuer
//   - a required expiration (exp) evaluated against now()
//   - a numeric subject (sub)
//
// An expired token yields an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString string, signKey []byte, tokenIssuer string, now func() time.Time) (int64, error) {
	if now == nil {
		now = time.Now
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return 0, fmt.Errorf("%w: empty subject", ErrInvalidJWTSubject)
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidJWTSubject, err)
	}

	return accountID, nil
}
