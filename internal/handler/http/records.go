package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	records, err := h.services.RecordService.List(r.Context(), entity)
	if err != nil {
		writeError(w, r, "*Handler.listRecords", err)
		return
	}

	utils.WriteJSON(w, models.RecordsResponse{Entity: entity, Records: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeWriteRequest(w, r, "*Handler.createRecord")
	if !ok {
		return
	}

	resp, err := h.services.RecordService.Create(r.Context(), chi.URLParam(r, "entity"), req)
	if err != nil {
		writeError(w, r, "*Handler.createRecord", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeWriteRequest(w, r, "*Handler.updateRecord")
	if !ok {
		return
	}

	resp, err := h.services.RecordService.Update(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "remoteID"), req)
	if err != nil {
		writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func decodeWriteRequest(w http.ResponseWriter, r *http.Request, fn string) (models.WriteRecordRequest, bool) {
	var req models.WriteRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return req, false
	}
	return req, true
}
