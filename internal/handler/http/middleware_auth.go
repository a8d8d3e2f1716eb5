package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/fretboard-keeper/internal/utils"
)

const bearerScheme = "bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// username via [service.AuthService.Authenticate] and stores the username in
// the request context under [utils.UsernameCtxKey].
//
// Missing, malformed and unknown credentials are rejected with 401. A storage
// failure during the lookup is reported as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		username, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively and the value must consist of
// exactly two space-separated parts.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if strings.ToLower(parts[0]) != bearerScheme {
		return "", ErrUnsupportedAuthScheme
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
