// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/fretboard-keeper/models"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 20
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// UserValidator checks login input. A username is the only identity key of an
// account, so it is validated before it reaches any storage query.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts a raw username string, models.LoginRequest or models.User
// (value or pointer). Field scoping is not supported: the username is the
// only validated attribute.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateUsername(value)
	case models.LoginRequest:
		return validateUsername(value.Username)
	case *models.LoginRequest:
		return validateUsername(value.Username)
	case models.User:
		return validateUsername(value.Username)
	case *models.User:
		return validateUsername(value.Username)
	default:
		return ErrUnsupportedType
	}
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}
