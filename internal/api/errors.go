package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed API call. The set is closed: every failure
// surfaced by this package carries exactly one of these values.
type Kind int

const (
	// KindUnauthorized means the server rejected the credentials (401).
	KindUnauthorized Kind = iota + 1
	// KindNotFound means the requested resource does not exist (404).
	KindNotFound
	// KindValidation means the server rejected the request payload (400, 422).
	KindValidation
	// KindServer means the server failed internally (5xx).
	KindServer
	// KindNetwork means no response was received at all.
	KindNetwork
	// KindDecode means the response body could not be parsed into the
	// expected shape.
	KindDecode
	// KindGenericHTTP covers any other HTTP status.
	KindGenericHTTP
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindGenericHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// Error is the normalized failure value returned by every Client
// operation. Message is user-facing; StatusCode is zero for network and
// decode failures.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == kind
}

// errorBody is the structured error shape the server returns alongside
// failure statuses.
type errorBody struct {
	Detail string `json:"detail"`
}

// networkError wraps a transport-level failure where no response arrived.
func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "network error, check your connection",
		cause:   err,
	}
}

// decodeError wraps a failure to parse a success response body.
func decodeError(err error) *Error {
	return &Error{
		Kind:    KindDecode,
		Message: "unexpected response from server",
		cause:   err,
	}
}

// classifyStatus turns a non-2xx response into a normalized *Error.
//
// A structured {"detail": ...} body wins over the status-derived message
// when it parses; a malformed body is ignored and the fallback message is
// used instead.
func classifyStatus(statusCode int, body []byte) *Error {
	detail := extractDetail(body)

	e := &Error{StatusCode: statusCode}
	switch {
	case statusCode == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
		e.Message = "not authorized, please log in"
	case statusCode == http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = "not found"
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
		e.Message = "the server rejected the request, check your input"
	case statusCode >= 500:
		e.Kind = KindServer
		e.Message = "server error, try again later"
	default:
		e.Kind = KindGenericHTTP
		e.Message = fmt.Sprintf("unexpected HTTP status %d", statusCode)
	}

	if detail != "" {
		e.Message = translateDetail(detail)
	}
	return e
}

// extractDetail pulls the "detail" field out of a structured error body.
// Parse failures are swallowed; the caller falls back to the status-based
// message.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return strings.TrimSpace(eb.Detail)
}

// translateDetail maps the known server detail strings to friendlier
// messages and passes everything else through verbatim.
func translateDetail(detail string) string {
	switch {
	case strings.Contains(detail, "Invalid credentials"):
		return "invalid login or password"
	case strings.Contains(detail, "Login already exists"):
		return "a user with this login already exists"
	case strings.Contains(detail, "Email already exists"):
		return "a user with this email already exists"
	default:
		return detail
	}
}
