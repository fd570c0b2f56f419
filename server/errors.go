package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/agent"
)

// WarningHeader carries persistence warnings on successful responses.
const WarningHeader = "X-Rentals-Warning"

// Error codes of the API.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeBadRequest     = "BAD_REQUEST"
	CodeNotConfigured  = "NOT_CONFIGURED"
	CodeDelegateFailed = "DELEGATE_FAILED"
	CodeBusy           = "BUSY"
	CodeInternal       = "INTERNAL"
)

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondWithJSON writes payload with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteJSONError writes an error response.
func WriteJSONError(w http.ResponseWriter, status int, code, message string, details any) {
	RespondWithJSON(w, status, ErrorBody{Error: APIError{Code: code, Message: message, Details: details}})
}

// writeError maps err to its status and code.
func writeError(w http.ResponseWriter, err error) {
	var verr *rentals.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSONError(w, http.StatusUnprocessableEntity, CodeValidation, err.Error(), verr.Fields)
	case errors.Is(err, rentals.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, agent.ErrNotConfigured):
		WriteJSONError(w, http.StatusServiceUnavailable, CodeNotConfigured, err.Error(), nil)
	case errors.Is(err, agent.ErrBusy):
		WriteJSONError(w, http.StatusConflict, CodeBusy, err.Error(), nil)
	case errors.Is(err, agent.ErrExtractionUnavailable),
		errors.Is(err, agent.ErrAdvisoryUnavailable),
		errors.Is(err, agent.ErrDiscarded):
		WriteJSONError(w, http.StatusBadGateway, CodeDelegateFailed, err.Error(), nil)
	default:
		WriteJSONError(w, http.StatusInternalServerError, CodeInternal, err.Error(), nil)
	}
}

func badRequest(w http.ResponseWriter, err error) {
	WriteJSONError(w, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
}

// warn sets the warning header when err is a persistence warning, and
// reports whether err was one (or nil).
func warn(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	var perr *rentals.PersistenceError
	if errors.As(err, &perr) {
		w.Header().Set(WarningHeader, perr.Error())
		return true
	}
	return false
}
