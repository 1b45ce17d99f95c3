package api

import (
	"net/http"
	"testing"

	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/session", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	snap := decodeBody[domain.SessionSnapshot](t, rr)
	assert.Equal(t, "teacher1", snap.Username)
	assert.Equal(t, "Teacher", snap.Role)
	assert.Equal(t, domain.DefaultPage, snap.CurrentPage)
	assert.Nil(t, snap.LastAIInteraction)
	assert.NotContains(t, rr.Body.String(), "last_ai_interaction")
}

func TestVisitPage(t *testing.T) {
	router := newTestRouter(t, nil)

	doRequest(t, router, http.MethodPost, "/api/session/visit", VisitPageRequest{Page: "Trends"})
	rr := doRequest(t, router, http.MethodPost, "/api/session/visit", VisitPageRequest{Page: "Trends"})

	require.Equal(t, http.StatusOK, rr.Code)
	snap := decodeBody[domain.SessionSnapshot](t, rr)
	assert.Equal(t, "Trends", snap.CurrentPage)
	assert.Equal(t, []string{domain.DefaultPage, "Trends"}, snap.PageVisits)

	rr = doRequest(t, router, http.MethodPost, "/api/session/visit", VisitPageRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionStampedByGeneration(t *testing.T) {
	router := newTestRouter(t, mocks.NewMockSubmitterWithText("ok"))

	doRequest(t, router, http.MethodPost, "/api/generate", GenerateRequest{Prompt: "hello"})
	rr := doRequest(t, router, http.MethodGet, "/api/session", nil)

	assert.NotNil(t, decodeBody[domain.SessionSnapshot](t, rr).LastAIInteraction)
}
