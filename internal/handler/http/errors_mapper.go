package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/service"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
)

// errorStatusMap lists every error with a dedicated status code. No error
// chain produced by the service layer wraps two entries with different
// codes, so the lookup order does not matter.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrLimitExceeded:         http.StatusUnprocessableEntity,
	service.ErrUnauthorized:          http.StatusUnauthorized,
	service.ErrUserLimitExceeded:     http.StatusForbidden,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyPathParamID:           http.StatusBadRequest,
	ErrNoUserInContext:            http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnsupportedAuthScheme:      http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUserLimitReached:       http.StatusForbidden,
	store.ErrNoUserWasFound:         http.StatusUnauthorized,
	store.ErrDirectoryAlreadyExists: http.StatusConflict,
	store.ErrDirectoryNotFound:      http.StatusNotFound,
	store.ErrDirectoryLimitReached:  http.StatusUnprocessableEntity,
	store.ErrStateAlreadyExists:     http.StatusConflict,
	store.ErrStateNotFound:          http.StatusNotFound,
	store.ErrStateLimitReached:      http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrAcquiringLock:        http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as {"detail": ...}. Server-side failures
// are reported with a generic message; their cause stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		detail = ErrInternalError.Error()
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detail, status)
}
