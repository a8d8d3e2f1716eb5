// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account identified by its username alone. There is no password:
// possession of the current session token is the only proof of identity.
type User struct {
	// Username is the globally unique, immutable identity key
	// (3-20 characters of [A-Za-z0-9_]).
	Username string `json:"username"`

	// TokenHash is the digest of the single active session token.
	// The raw token is never persisted and never leaves the auth service
	// except in a login response.
	TokenHash string `json:"-"`

	// CreatedAt is the moment of the first successful login.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is refreshed together with the token on every login.
	LastLogin time.Time `json:"last_login"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the outcome of a successful login: a freshly minted token that
// supersedes any token issued before.
type Session struct {
	Username  string
	Token     string
	IsNewUser bool
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	IsNewUser bool   `json:"isNewUser"`
}

// VerifyResponse is returned by GET /auth/verify.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
}
