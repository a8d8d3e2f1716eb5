package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func usernameFromRequest(r *http.Request) (string, error) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return username, nil
}

func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		return "", ErrEmptyPathParamID
	}
	return id, nil
}
