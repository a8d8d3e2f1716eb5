package http

import (
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/app"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	message := app.MsgLoginSuccessful
	if session.IsNewUser {
		message = app.MsgRegistrationSuccessful
	}

	log.Info().Str("username", session.Username).Bool("new_user", session.IsNewUser).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Success:   true,
		Token:     session.Token,
		Username:  session.Username,
		Message:   message,
		IsNewUser: session.IsNewUser,
	}, http.StatusOK)
}

// verify is reached only through the auth middleware, so a request that gets
// here carries a valid token.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.verify")
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: true, Username: username}, http.StatusOK)
}
