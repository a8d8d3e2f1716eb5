// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fretboard-keeper server handlers.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. The web client shows some of them to the user verbatim.
package app

const (
	// MsgAPIRunning is returned by the root liveness endpoint.
	MsgAPIRunning = "Fretboard Diagram API is running"

	// MsgLoginSuccessful is returned when an existing user signs in.
	MsgLoginSuccessful = "Login successful"

	// MsgRegistrationSuccessful is returned when the first login of a
	// username creates the account.
	MsgRegistrationSuccessful = "Registration successful"

	// MsgDirectoryDeleted acknowledges a directory delete. The directory's
	// states are gone as well.
	MsgDirectoryDeleted = "Directory and its states deleted"

	// MsgStateDeleted acknowledges a state delete.
	MsgStateDeleted = "State deleted"

	// MsgDataSavedFormat is formatted with the saved directory and state
	// counts.
	MsgDataSavedFormat = "Saved %d directories and %d states"
)

// Health statuses reported by the liveness endpoints.
const (
	StatusRunning = "running"
	StatusHealthy = "healthy"
)
