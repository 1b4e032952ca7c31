package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/service"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrUnknownEntity, http.StatusNotFound},
	{service.ErrInvalidField, http.StatusBadRequest},
	{service.ErrNoRemoteID, http.StatusBadRequest},
	{service.ErrUnidentifiableRecord, http.StatusUnprocessableEntity},
	{service.ErrDuplicateLocalRecord, http.StatusConflict},
	{service.ErrRecordNotPersisted, http.StatusNotFound},
	{service.ErrLockNotAcquired, http.StatusConflict},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrRemoteIDConflict, http.StatusConflict},
	{store.ErrUnknownColumn, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},

	{adapter.ErrRemoteUnavailable, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrInvalidResponse, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusConflict},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
}
