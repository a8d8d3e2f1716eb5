package http

import (
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/app"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// listStates returns the states of one directory when ?directoryId= is set,
// otherwise all states of the user.
func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listStates")
		return
	}

	states, err := h.services.StateService.ListStates(r.Context(), username, r.URL.Query().Get("directoryId"))
	if err != nil {
		writeError(w, r, err, "*Handler.listStates")
		return
	}
	if states == nil {
		states = []models.State{}
	}

	utils.WriteJSON(w, states, http.StatusOK)
}

func (h *Handler) createState(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createState")
		return
	}

	var state models.State
	if err = decodeJSON(r, &state); err != nil {
		writeError(w, r, err, "*Handler.createState")
		return
	}

	created, err := h.services.StateService.CreateState(r.Context(), username, state)
	if err != nil {
		writeError(w, r, err, "*Handler.createState")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getState")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getState")
		return
	}

	state, err := h.services.StateService.GetState(r.Context(), username, id)
	if err != nil {
		writeError(w, r, err, "*Handler.getState")
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) updateState(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateState")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateState")
		return
	}

	var patch models.StatePatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, "*Handler.updateState")
		return
	}

	updated, err := h.services.StateService.UpdateState(r.Context(), username, id, patch)
	if err != nil {
		writeError(w, r, err, "*Handler.updateState")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteState(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteState")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteState")
		return
	}

	if err = h.services.StateService.DeleteState(r.Context(), username, id); err != nil {
		writeError(w, r, err, "*Handler.deleteState")
		return
	}

	utils.WriteJSON(w, models.AckResponse{Success: true, Message: app.MsgStateDeleted}, http.StatusOK)
}
