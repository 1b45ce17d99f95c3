package api

import (
	"net/http"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/service"
)

// SessionHandler exposes the teacher session.
type SessionHandler struct {
	assistant service.AssistantService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(assistant service.AssistantService) *SessionHandler {
	return &SessionHandler{assistant: assistant}
}

// GetSession handles GET /api/session requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.assistant.Session())
}

// VisitPage handles POST /api/session/visit requests
func (h *SessionHandler) VisitPage(w http.ResponseWriter, r *http.Request) {
	var req VisitPageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.assistant.VisitPage(req.Page)
	shared.RespondWithJSON(w, r, http.StatusOK, h.assistant.Session())
}
