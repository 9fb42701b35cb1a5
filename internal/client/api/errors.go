package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags the broad class of a request failure so callers can branch
// without sniffing message strings.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuth         Kind = "auth"
	KindConnectivity Kind = "connectivity"
	KindUnknown      Kind = "unknown"
)

// Fallback messages used when the backend gives nothing usable.
const (
	fallbackMessage     = "An error occurred"
	connectivityMessage = "Network error. Please check your connection."
)

// Error is the single structured failure type raised by the client.
//
// Status is the HTTP status code of the response, or 0 when no usable
// response was received (DNS failure, refused connection, timeout,
// unparsable body). Fields carries field-level validation hints when the
// backend names offending fields.
type Error struct {
	Message string   `json:"error"`
	Status  int      `json:"status"`
	Fields  []string `json:"field,omitempty"`
	Kind    Kind     `json:"-"`
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// newError builds an Error for the given status, deriving its Kind.
func newError(message string, status int, fields []string) *Error {
	if message == "" {
		message = fallbackMessage
	}
	return &Error{Message: message, Status: status, Fields: fields, Kind: kindForStatus(status)}
}

// newConnectivityError is raised when the request never produced a usable
// response.
func newConnectivityError() *Error {
	return &Error{Message: connectivityMessage, Status: 0, Kind: KindConnectivity}
}

func kindForStatus(status int) Kind {
	switch status {
	case 0:
		return KindConnectivity
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindUnknown
	}
}

// AsError unwraps err into an *Error if one is anywhere in its chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuth reports whether err is an authentication/authorization failure
// (401/403-class response).
func IsAuth(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindAuth
}

// IsConnectivity reports whether err means the backend was never reached.
func IsConnectivity(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindConnectivity
}
