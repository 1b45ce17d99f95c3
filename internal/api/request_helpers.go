package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/classroom-assist/internal/api/shared"
	"github.com/phrazzld/classroom-assist/internal/service"
)

var errInvalidID = errors.New("id must be a positive integer")

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into req and validates it, writing
// a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// handleServiceError writes the status and safe message for a service error.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// withPathID extracts the {id} parameter and passes it to next, or responds 400.
func withPathID(next func(w http.ResponseWriter, r *http.Request, id int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := getPathID(r, "id")
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid ID", err)
			return
		}
		next(w, r, id)
	}
}
