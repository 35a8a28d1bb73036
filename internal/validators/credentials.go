// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-account-service/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername requires a non-empty username without whitespace that
	// fits the accounts.username column.
	FieldUsername = "username"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldPasswordLength limits the password to what bcrypt can hash
	// without truncation.
	FieldPasswordLength = "password_length"

	// FieldEmail requires a non-empty, well-formed address without a display
	// name.
	FieldEmail = "email"
)

const (
	MaxUsernameLength = 255
	MaxEmailLength    = 255

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// CredentialsValidator validates [models.Credentials].
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldPasswordLength, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
			if !utf8.ValidString(creds.Username) || containsSpaceOrControl(creds.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if len(creds.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
			if len(creds.Email) > MaxEmailLength {
				return ErrEmailTooLong
			}
			addr, err := mail.ParseAddress(creds.Email)
			if err != nil || addr.Address != creds.Email {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func containsSpaceOrControl(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
