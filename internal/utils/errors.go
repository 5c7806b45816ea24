// internal/utils/errors.go
package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer and the body reader to
// report request-local failures. None of them are fatal to the server.
var (
	ErrInvalidContentLength  = errors.New("invalid_content_length")
	ErrInvalidJSONBody       = errors.New("invalid_json_body")
	ErrBodyTooLarge          = errors.New("body_too_large")
	ErrInvalidMortgageValues = errors.New("invalid_mortgage_values")
	ErrMissingBookingField   = errors.New("missing_booking_field")
	ErrInvalidDateFormat     = errors.New("invalid_date_format")
	ErrEndpointNotFound      = errors.New("endpoint_not_found")
	ErrUnsupportedMethod     = errors.New("unsupported_method")
)

// Public messages. These are part of the wire contract consumed by the
// frontend, so they must not change.
const (
	MsgInvalidContentLength  = "Invalid Content-Length"
	MsgInvalidJSONBody       = "Invalid JSON body"
	MsgBodyTooLarge          = "Request body too large"
	MsgInvalidMortgageValues = "Invalid mortgage values"
	MsgMissingBookingField   = "All booking fields are required"
	MsgInvalidDateFormat     = "visitDate must be YYYY-MM-DD"
	MsgEndpointNotFound      = "Endpoint not found"
	MsgUnsupportedMethod     = "Unsupported method"
	MsgInternal              = "An unexpected error occurred"
)

// AppError carries everything a controller needs to answer a failed request.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError maps a sentinel error to its status, code and public message.
// Unknown errors become a 500.
func NewAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrInvalidContentLength):
		return &AppError{http.StatusBadRequest, ErrCodeInvalidPayload, MsgInvalidContentLength, err}
	case errors.Is(err, ErrInvalidJSONBody):
		return &AppError{http.StatusBadRequest, ErrCodeInvalidPayload, MsgInvalidJSONBody, err}
	case errors.Is(err, ErrBodyTooLarge):
		return &AppError{http.StatusRequestEntityTooLarge, ErrCodeInvalidPayload, MsgBodyTooLarge, err}
	case errors.Is(err, ErrInvalidMortgageValues):
		return &AppError{http.StatusBadRequest, ErrCodeValidation, MsgInvalidMortgageValues, err}
	case errors.Is(err, ErrMissingBookingField):
		return &AppError{http.StatusBadRequest, ErrCodeValidation, MsgMissingBookingField, err}
	case errors.Is(err, ErrInvalidDateFormat):
		return &AppError{http.StatusBadRequest, ErrCodeValidation, MsgInvalidDateFormat, err}
	case errors.Is(err, ErrEndpointNotFound):
		return &AppError{http.StatusNotFound, ErrCodeNotFound, MsgEndpointNotFound, err}
	case errors.Is(err, ErrUnsupportedMethod):
		return &AppError{http.StatusNotImplemented, ErrCodeUnsupportedMethod, MsgUnsupportedMethod, err}
	default:
		return &AppError{http.StatusInternalServerError, ErrCodeInternal, MsgInternal, err}
	}
}

// HandleAppError centralizes responding to errors coming out of services.
func HandleAppError(w http.ResponseWriter, err error) {
	appErr := NewAppError(err)
	RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Err)
}
