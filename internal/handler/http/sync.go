// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/app"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// save replaces everything the user has stored with the request body.
func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.save")
		return
	}

	var req models.ReplaceRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.save")
		return
	}

	result, err := h.services.SyncService.ReplaceAll(r.Context(), username, req)
	if err != nil {
		writeError(w, r, err, "*Handler.save")
		return
	}

	log.Info().
		Str("username", username).
		Int("directories", result.SavedDirectoryCount).
		Int("states", result.SavedStateCount).
		Msg("data replaced")

	utils.WriteJSON(w, models.SaveResponse{
		Success:             true,
		Message:             fmt.Sprintf(app.MsgDataSavedFormat, result.SavedDirectoryCount, result.SavedStateCount),
		SavedAt:             result.SavedAt,
		SavedDirectoryCount: result.SavedDirectoryCount,
		SavedStateCount:     result.SavedStateCount,
	}, http.StatusOK)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.load")
		return
	}

	snapshot, err := h.services.SyncService.LoadAll(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "*Handler.load")
		return
	}

	utils.WriteJSON(w, models.LoadResponse{
		Success:     true,
		Directories: snapshot.Directories,
		States:      snapshot.States,
	}, http.StatusOK)
}
