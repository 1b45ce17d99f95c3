package api

import (
	"net/http"
	"testing"

	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTrends(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/trends", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[TrendListResponse](t, rr).Trends, 5)

	rr = doRequest(t, router, http.MethodGet, "/api/trends?category=pedagogy", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	trends := decodeBody[TrendListResponse](t, rr).Trends
	require.Len(t, trends, 1)
	assert.Equal(t, "Microlearning Modules", trends[0].Title)
}

func TestAdoptTrend(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/trends/4/adopt", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	trend := decodeBody[domain.Trend](t, rr)
	assert.Equal(t, 4, trend.ID)
	assert.True(t, trend.Adopted)

	rr = doRequest(t, router, http.MethodPost, "/api/trends/4/adopt", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Trend already adopted", decodeBody[shared.ErrorResponse](t, rr).Error)

	rr = doRequest(t, router, http.MethodPost, "/api/trends/77/adopt", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int{4}, decodeBody[domain.SessionSnapshot](t, rr).AdoptedTrends)
}

func TestListUpdates(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"all", "", 5},
		{"high impact", "?impact=high", 2},
		{"not integrated", "?integration=not_integrated", 5},
		{"integrated", "?integration=integrated", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, "/api/updates"+tt.query, nil)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Len(t, decodeBody[UpdateListResponse](t, rr).Updates, tt.wantCount)
		})
	}

	rr := doRequest(t, router, http.MethodGet, "/api/updates?integration=sometimes", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid integration status", decodeBody[shared.ErrorResponse](t, rr).Error)
}

func TestIntegrateUpdate(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/updates/2/integrate", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[domain.ContentUpdate](t, rr).Integrated)

	rr = doRequest(t, router, http.MethodPost, "/api/updates/2/integrate", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/updates?integration=integrated", nil)
	updates := decodeBody[UpdateListResponse](t, rr).Updates
	require.Len(t, updates, 1)
	assert.Equal(t, 2, updates[0].ID)
}
