package http

import (
	"net/http"

	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
)

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	entities := h.services.Reconcilers.Entities()
	utils.WriteJSON(w, models.EntitiesResponse{Entities: entities, Length: len(entities)}, http.StatusOK)
}
