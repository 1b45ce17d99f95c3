package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/phrazzld/classroom-assist/internal/mocks"
	"github.com/phrazzld/classroom-assist/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the real service over sample data. A nil submitter
// leaves the client unavailable.
func newTestRouter(t *testing.T, sub *mocks.MockSubmitter) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var submitter generation.Submitter
	if sub != nil {
		submitter = sub
	}
	client := generation.NewClient(logger, submitter, generation.WithSleeper(func(time.Duration) {}))
	svc, err := service.NewAssistantService(
		client,
		domain.NewCatalog(domain.SampleTrends(), domain.SampleUpdates()),
		domain.NewSession("teacher1", "Teacher"),
		logger,
	)
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	return r
}

// doRequest sends a request with an optional JSON body through the router.
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
