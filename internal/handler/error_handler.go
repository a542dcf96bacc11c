package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"go.uber.org/zap"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleError converts any error into the {success:false, message} envelope.
// Domain errors keep their message and map to 401/400/404; everything else is
// logged and surfaced as a generic 500 so store internals never leak.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), errorResponse{
			Success: false,
			Message: domainErr.Message,
		})
		return
	}

	h.log.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Message: "Failed to process request",
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "VALIDATION":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// badBody is the decode-failure response for malformed JSON.
func (h *Handler) badBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}
