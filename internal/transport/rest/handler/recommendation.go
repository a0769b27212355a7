package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"myfragance/internal/service"
	"myfragance/internal/transport/rest/middleware"
)

// RecommendationHandler handles recommendation endpoints
type RecommendationHandler struct {
	recSvc *service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recSvc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recSvc: recSvc}
}

// GetForSession handles GET /v1/sessions/{id}/recommendations
func (h *RecommendationHandler) GetForSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if claimed := middleware.GetSessionID(r.Context()); claimed != "" && claimed != sessionID {
		writeError(w, http.StatusForbidden, "token does not match session")
		return
	}

	recs, err := h.recSvc.GetForSession(r.Context(), sessionID, limitParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId":       sessionID,
		"recommendations": recs,
	})
}

// Hide handles POST /v1/sessions/{id}/recommendations/{key}/hide
func (h *RecommendationHandler) Hide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	if claimed := middleware.GetSessionID(r.Context()); claimed != "" && claimed != sessionID {
		writeError(w, http.StatusForbidden, "token does not match session")
		return
	}

	if err := h.recSvc.Hide(r.Context(), sessionID, vars["key"]); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "hidden"})
}

// Popular handles GET /v1/recommendations/popular
func (h *RecommendationHandler) Popular(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recSvc.Popular(r.Context(), limitParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
	})
}

func limitParam(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 10
}
