package api

import (
	"net/http"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/service"
)

// CatalogHandler serves trend and content update browsing plus the
// adopt/integrate workflow.
type CatalogHandler struct {
	assistant service.AssistantService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(assistant service.AssistantService) *CatalogHandler {
	return &CatalogHandler{assistant: assistant}
}

// ListTrends handles GET /api/trends?category= requests
func (h *CatalogHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	trends := h.assistant.ListTrends(r.URL.Query().Get("category"))
	shared.RespondWithJSON(w, r, http.StatusOK, TrendListResponse{Trends: trends})
}

// AdoptTrend handles POST /api/trends/{id}/adopt requests
func (h *CatalogHandler) AdoptTrend(w http.ResponseWriter, r *http.Request, id int) {
	trend, err := h.assistant.AdoptTrend(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, trend)
}

// ListUpdates handles GET /api/updates?category=&impact=&integration= requests
func (h *CatalogHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := domain.ParseIntegrationStatus(q.Get("integration"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	updates := h.assistant.ListUpdates(domain.UpdateFilter{
		Category:    q.Get("category"),
		Impact:      domain.Impact(q.Get("impact")),
		Integration: status,
	})
	shared.RespondWithJSON(w, r, http.StatusOK, UpdateListResponse{Updates: updates})
}

// IntegrateUpdate handles POST /api/updates/{id}/integrate requests
func (h *CatalogHandler) IntegrateUpdate(w http.ResponseWriter, r *http.Request, id int) {
	update, err := h.assistant.IntegrateUpdate(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, update)
}
