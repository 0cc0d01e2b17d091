package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hrms/internal/domain/errs"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn().Err(err).Msg("write json failed")
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailFromError maps the domain error taxonomy onto HTTP statuses.
func FailFromError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
	case errors.Is(err, errs.ErrUnknownRole):
		Fail(w, http.StatusBadRequest, "unknown_role", err.Error(), requestID)
	case errors.Is(err, errs.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, errs.ErrInvalidState):
		Fail(w, http.StatusConflict, "invalid_state", err.Error(), requestID)
	case errors.Is(err, errs.ErrAccessDenied):
		Fail(w, http.StatusForbidden, "forbidden", err.Error(), requestID)
	default:
		Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
