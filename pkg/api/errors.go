package api

import "net/http"

// User-facing message catalog for collaborator failures.
const (
	msgNetwork          = "Network error. Please check your connection"
	msgValidation       = "The submitted data failed validation"
	msgUnauthorized     = "Authorization required"
	msgForbidden        = "Access denied"
	msgNotFound         = "Resource not found"
	msgServer           = "Server error"
	msgUnknown          = "An unknown error occurred"
	msgInvalidResponse  = "Invalid response from the server"
	msgMissingOrderData = "Order data or items are missing"
)

// Error carries the HTTP status of a failed request together with its
// user-facing message. Status 0 means the request never reached the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func messageFor(status int) string {
	switch {
	case status == 0:
		return msgNetwork
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return msgValidation
	case status == http.StatusUnauthorized:
		return msgUnauthorized
	case status == http.StatusForbidden:
		return msgForbidden
	case status == http.StatusNotFound:
		return msgNotFound
	case status >= 500:
		return msgServer
	default:
		return msgUnknown
	}
}
