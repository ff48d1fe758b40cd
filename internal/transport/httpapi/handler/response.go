package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/kislikjeka/xrplview/internal/shared/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, apperrors.ErrCodeInternal, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondWithAppError maps an error to its HTTP status. Errors without an AppError in their
// chain are reported as internal without leaking their text.
func respondWithAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		respondWithError(w, http.StatusInternalServerError, apperrors.ErrCodeInternal, "internal error")
		return
	}
	respondWithError(w, statusFor(appErr.Code), appErr.Code, appErr.Message)
}

func statusFor(code string) int {
	switch code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidAddress:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
