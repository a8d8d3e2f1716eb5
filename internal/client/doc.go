// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the backup command-line client.
//
// The client signs in once, keeps the session token in a local file and
// moves a user's complete data set between the server and a JSON file:
//
//	fretboard-client login alice
//	fretboard-client export backup.json
//	fretboard-client import backup.json
//
// The backup file has the same shape as the body of POST /data/save.
package client
