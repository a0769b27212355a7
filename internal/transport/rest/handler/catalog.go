package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"myfragance/internal/service"
)

// CatalogHandler handles perfume catalog endpoints
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// List handles GET /v1/catalog/perfumes
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	index, err := h.catalogSvc.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lastSync, _ := h.catalogSvc.LastSync(r.Context())
	response := map[string]interface{}{
		"perfumes": index.All(),
		"count":    index.Len(),
	}
	if !lastSync.IsZero() {
		response["lastSync"] = lastSync.Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, response)
}

// Get handles GET /v1/catalog/perfumes/{key}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	perfume, err := h.catalogSvc.GetPerfume(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if perfume == nil {
		writeError(w, http.StatusNotFound, "perfume not found")
		return
	}

	writeJSON(w, http.StatusOK, perfume)
}

// Invalidate handles POST /v1/catalog/invalidate
func (h *CatalogHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.Invalidate(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}
