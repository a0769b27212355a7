package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"myfragance/internal/model"
	"myfragance/internal/service"
	"myfragance/internal/transport/rest/middleware"
)

// SessionHandler handles flow session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	resp, err := h.sessionSvc.StartSession(r.Context(), userID, req.FlowType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Current handles GET /v1/sessions/{id}/question/current
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	state, err := h.sessionSvc.Current(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Answer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req model.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	state, err := h.sessionSvc.Answer(r.Context(), sessionID, &req)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Advance handles POST /v1/sessions/{id}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	state, err := h.sessionSvc.Advance(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Retreat handles POST /v1/sessions/{id}/retreat
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	state, err := h.sessionSvc.Retreat(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Responses handles GET /v1/sessions/{id}/responses
func (h *SessionHandler) Responses(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	responses, err := h.sessionSvc.GetResponses(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// Profile handles GET /v1/sessions/{id}/profile
func (h *SessionHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	profile, err := h.sessionSvc.GetProfile(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusConflict, "session is not completed yet")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// sessionFromPath returns the session id from the URL after checking it
// matches the token's session claim.
func (h *SessionHandler) sessionFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session id is required")
		return "", false
	}
	if claimed := middleware.GetSessionID(r.Context()); claimed != "" && claimed != sessionID {
		writeError(w, http.StatusForbidden, "token does not match session")
		return "", false
	}
	return sessionID, true
}
