package http

import (
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/app"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
)

func (h *Handler) listDirectories(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listDirectories")
		return
	}

	dirs, err := h.services.DirectoryService.ListDirectories(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "*Handler.listDirectories")
		return
	}
	if dirs == nil {
		dirs = []models.Directory{}
	}

	utils.WriteJSON(w, dirs, http.StatusOK)
}

func (h *Handler) createDirectory(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createDirectory")
		return
	}

	var dir models.Directory
	if err = decodeJSON(r, &dir); err != nil {
		writeError(w, r, err, "*Handler.createDirectory")
		return
	}

	created, err := h.services.DirectoryService.CreateDirectory(r.Context(), username, dir)
	if err != nil {
		writeError(w, r, err, "*Handler.createDirectory")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateDirectory(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateDirectory")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateDirectory")
		return
	}

	var patch models.DirectoryPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, "*Handler.updateDirectory")
		return
	}

	updated, err := h.services.DirectoryService.UpdateDirectory(r.Context(), username, id, patch)
	if err != nil {
		writeError(w, r, err, "*Handler.updateDirectory")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteDirectory removes the directory together with all of its states.
func (h *Handler) deleteDirectory(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteDirectory")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteDirectory")
		return
	}

	if err = h.services.DirectoryService.DeleteDirectory(r.Context(), username, id); err != nil {
		writeError(w, r, err, "*Handler.deleteDirectory")
		return
	}

	utils.WriteJSON(w, models.AckResponse{Success: true, Message: app.MsgDirectoryDeleted}, http.StatusOK)
}
