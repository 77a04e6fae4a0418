package dgerrors

import "net/http"

// Code identifies the kind of failure so callers can branch without string
// matching. The set mirrors the client's error taxonomy: configuration,
// transport, protocol (non-2xx), shape (unexpected body), and validation.
type Code string

const (
	// CodeConfiguration marks an invalid client configuration, such as a
	// missing or malformed endpoint URL. Not recoverable by retry.
	CodeConfiguration Code = "ConfigurationError"

	// CodeNetworkFailure marks a transport-level failure (DNS, connection
	// refused, timeout) where no HTTP response was received.
	CodeNetworkFailure Code = "NetworkFailure"

	// CodeResponseError marks a non-2xx HTTP response. The Error carries the
	// status code and the server-provided message when present.
	CodeResponseError Code = "ResponseError"

	// CodeInvalidServerOutput marks a 2xx response whose body does not match
	// the expected shape, so callers can tell a protocol mismatch apart from
	// a transport or server failure.
	CodeInvalidServerOutput Code = "InvalidServerOutput"

	// CodeValidation marks a caller-supplied argument failing a client-side
	// precondition. Raised before any network I/O.
	CodeValidation Code = "ValidationError"

	// CodeNotFound marks a server-reported missing resource.
	CodeNotFound Code = "NotFoundError"

	// CodeUnauthorized marks a 401/403 response. Never auto-retried with a
	// re-login.
	CodeUnauthorized Code = "UnauthorizedError"

	CodeUnknownError Code = "UnknownError"
)

// CodeForStatus maps an HTTP status code to a taxonomy code.
func CodeForStatus(statusCode int) Code {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	default:
		return CodeResponseError
	}
}
