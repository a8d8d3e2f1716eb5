// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReplaceRequest is the body of POST /data/save. It carries the complete set of
// the user's directories and states; whatever the server held before is
// discarded.
type ReplaceRequest struct {
	Directories []Directory `json:"directories"`
	States      []State     `json:"states"`
}

// ReplaceResult reports what a bulk replace stored.
type ReplaceResult struct {
	SavedDirectoryCount int
	SavedStateCount     int
	SavedAt             time.Time
}

// Snapshot is the full data set of one user.
type Snapshot struct {
	Directories []Directory
	States      []State
}

// SaveResponse is returned by POST /data/save.
type SaveResponse struct {
	Success             bool      `json:"success"`
	Message             string    `json:"message"`
	SavedAt             time.Time `json:"saved_at"`
	SavedDirectoryCount int       `json:"savedDirectoryCount"`
	SavedStateCount     int       `json:"savedStateCount"`
}

// LoadResponse is returned by GET /data/load.
type LoadResponse struct {
	Success     bool        `json:"success"`
	Directories []Directory `json:"directories"`
	States      []State     `json:"states"`
}
