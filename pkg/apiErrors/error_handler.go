package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required parameter absent
	ErrInvalidFormat       = "VAL_003" // Parameter present but unparsable
	ErrUnknownLocation     = "VAL_004" // Location token does not map to a known location
	ErrUnknownTenant       = "VAL_005" // Tenant ID does not map to a configured tenant

	// Server errors
	ErrInternalServer  = "SRV_001" // Internal server error
	ErrDatabase        = "SRV_002" // Database operation failed
	ErrExternalService = "SRV_003" // External service unavailable

	// Upstream POS errors
	ErrUpstreamProtocol = "UPS_001" // POS responded with a non-zero result code
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownLocation:     http.StatusBadRequest,
	ErrUnknownTenant:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabase:            http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrUpstreamProtocol:    http.StatusBadGateway,
}

// APIError is the standard error envelope for all endpoints.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload with the HTTP status
// mapped from the error code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
