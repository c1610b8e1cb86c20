package portal

import "errors"

// Server error codes the client distinguishes. Anything else is rendered
// with generic wording.
const (
	CodeAlreadySigned = "ALREADY_SIGNED"
	CodeExpired       = "EXPIRED"
	CodeRevoked       = "REVOKED"
	CodeDeclined      = "DECLINED"
	CodeNotRead       = "NOT_READ"

	// CodeNetwork is client-assigned when the transport itself failed and no
	// server response was decoded.
	CodeNetwork = "NETWORK"
)

// APIError is a decoded server rejection. Status is the HTTP status code;
// 410 marks a permanently consumed link.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "portal request rejected"
}

// ErrCode extracts the server error code from err, or CodeNetwork when the
// failure never produced a server response.
func ErrCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		return apiErr.Code
	}
	if errors.As(err, &apiErr) {
		return ""
	}
	return CodeNetwork
}

// ErrMessage returns the user-facing message for err.
func ErrMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "Network error. Please check your connection."
}

// IsCode reports whether err carries the given server code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
