// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/utils"
)

// notFound replaces chi's plain-text 404 so that every error of the API has
// the same JSON shape.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrRouteNotFound.Error(), http.StatusNotFound)
}

// methodNotAllowed replaces chi's plain-text 405. chi has already set the
// Allow header by the time it is called.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
}
