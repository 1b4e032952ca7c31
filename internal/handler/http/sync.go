package http

import (
	"net/http"

	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/go-chi/chi/v5"
)

// syncEntity reconciles every unsynced record of one entity. The optional
// "parent" query parameter narrows the batch to one parent application.
func (h *Handler) syncEntity(w http.ResponseWriter, r *http.Request) {
	svc, err := h.services.Reconcilers.Get(chi.URLParam(r, "entity"))
	if err != nil {
		writeError(w, r, "*Handler.syncEntity", err)
		return
	}

	report, err := svc.ReconcileAllUnsynced(r.Context(), r.URL.Query().Get("parent"), nil)
	if err != nil {
		writeError(w, r, "*Handler.syncEntity", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) importEntity(w http.ResponseWriter, r *http.Request) {
	svc, err := h.services.Reconcilers.Get(chi.URLParam(r, "entity"))
	if err != nil {
		writeError(w, r, "*Handler.importEntity", err)
		return
	}

	report, err := svc.Import(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.importEntity", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) migrateEntity(w http.ResponseWriter, r *http.Request) {
	svc, err := h.services.Reconcilers.Get(chi.URLParam(r, "entity"))
	if err != nil {
		writeError(w, r, "*Handler.migrateEntity", err)
		return
	}

	report, err := svc.MigrateAll(r.Context(), nil)
	if err != nil {
		writeError(w, r, "*Handler.migrateEntity", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) compareEntity(w http.ResponseWriter, r *http.Request) {
	svc, err := h.services.Reconcilers.Get(chi.URLParam(r, "entity"))
	if err != nil {
		writeError(w, r, "*Handler.compareEntity", err)
		return
	}

	report, err := svc.Compare(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.compareEntity", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.Reconcilers.SyncAll(r.Context(), nil)
	if err != nil {
		writeError(w, r, "*Handler.syncAll", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.syncAll").
		Int("synced", resp.Synced).
		Int("errors", resp.Errors).
		Msg("full sync finished")

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) uploadStatus(w http.ResponseWriter, r *http.Request) {
	if h.services.Uploads == nil {
		utils.WriteJSON(w, models.UploadQueueStatus{Pending: []models.UploadTaskSummary{}}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, h.services.Uploads.Status(), http.StatusOK)
}
