package http

import (
	"encoding/json"
	"net/http"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response body", "error", err)
	}
}

// writeError renders any error as the uniform domain error body. The HTTP
// status comes from the error's kind; unknown errors surface as the generic
// unexpected kind with a 500.
func writeError(w http.ResponseWriter, err error) {
	domainErr := apperrors.From(err)
	if domainErr.Kind.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	writeJSON(w, domainErr.Kind.HTTPStatus, domainErr)
}
