package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by concern.
const (
	// Authentication (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrUserLocked            = "AUTH_004"
	ErrPasswordExpired       = "AUTH_005"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"

	// Validation (VAL_*)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Credits (CRD_*)
	ErrInsufficientCredit = "CRD_001"
	ErrAccountNotFound    = "CRD_002"
	ErrInvalidAmount      = "CRD_003"

	// Generation (GEN_*)
	ErrGenerationRequest = "GEN_001"
	ErrPromptNotFound    = "GEN_002"

	// Billing (BIL_*)
	ErrUnknownPack      = "BIL_001"
	ErrInvalidSignature = "BIL_002"

	// Server (SRV_*)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
	ErrCommunication     = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInsufficientCredit:    http.StatusPaymentRequired,
	ErrAccountNotFound:       http.StatusNotFound,
	ErrInvalidAmount:         http.StatusBadRequest,
	ErrGenerationRequest:     http.StatusBadRequest,
	ErrPromptNotFound:        http.StatusNotFound,
	ErrUnknownPack:           http.StatusBadRequest,
	ErrInvalidSignature:      http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the standard error envelope returned to clients.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response. Unknown
// codes fall back to 500.
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

// FromError wraps an existing Go error in the API envelope.
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
