package shared

import (
	"errors"
	"net/http"

	"consentd/internal/transport/http/json"
	dErrors "consentd/pkg/domain-errors"
)

// WriteError centralizes domain error translation to HTTP responses.
// It translates transport-agnostic domain errors into HTTP status codes and a
// JSON message body. Internal error detail is never exposed to clients; the
// domain message is used only for client-caused failures.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status := DomainCodeToHTTPStatus(domainErr.Code)
		message := domainErr.Message
		if message == "" || domainErr.Code == dErrors.CodeInternal {
			message = defaultMessage(domainErr.Code)
		}
		json.WriteJSON(w, status, map[string]string{"message": message})
		return
	}

	// Fallback for unexpected errors
	json.WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"message": defaultMessage(dErrors.CodeInternal),
	})
}

// WriteErrorMessage writes a domain error but overrides the client-facing
// message, for endpoints whose response wording is part of the API contract.
func WriteErrorMessage(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status = DomainCodeToHTTPStatus(domainErr.Code)
	}
	json.WriteJSON(w, status, map[string]string{"message": message})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "Not found"
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return "Invalid request"
	case dErrors.CodeConflict:
		return "Conflict"
	case dErrors.CodeUnauthorized:
		return "Unauthorized"
	case dErrors.CodeForbidden:
		return "Forbidden"
	default:
		return "Internal server error"
	}
}
