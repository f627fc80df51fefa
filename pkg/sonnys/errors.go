package sonnys

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a StatusError by the semantic meaning of its HTTP
// status code.
type ErrorKind string

const (
	// ErrorKindAuth covers 403 responses (bad or missing credentials).
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindRateLimit covers 429 responses.
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindValidation covers 400 and 422 responses.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindNotFound covers 404 responses.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindServer covers every 5xx response, including codes the
	// upstream API does not document.
	ErrorKindServer ErrorKind = "server"
	// ErrorKindGeneric covers any other non-2xx response.
	ErrorKindGeneric ErrorKind = "generic"
)

// StatusError represents a non-2xx response from the API. It carries the raw
// status code, the server's own error taxonomy token (ErrorType), and the
// parsed response body so callers can act on errors programmatically.
type StatusError struct {
	Kind       ErrorKind              `json:"kind"                 yaml:"kind"`
	StatusCode int                    `json:"status_code"          yaml:"status_code"`
	Message    string                 `json:"message"              yaml:"message"`
	ErrorType  string                 `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Body       map[string]interface{} `json:"body,omitempty"       yaml:"body,omitempty"`
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("%s (status: %d, type: %s)", e.Message, e.StatusCode, e.ErrorType)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// ConnectionError represents a request that never received a response
// (DNS failure, refused connection, or timeout). Timeout distinguishes the
// deadline case; no status code exists for either.
type ConnectionError struct {
	Timeout bool
	Err     error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Timeout {
		return "request timed out: " + e.Err.Error()
	}

	return "connection error: " + e.Err.Error()
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response that was received successfully but whose
// body could not be decoded into the expected typed record. It is distinct
// from the HTTP status taxonomy: the exchange itself succeeded.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying unmarshal error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// JobTimeoutError is raised when a batch job stays in the "working" state
// past the client-imposed deadline.
type JobTimeoutError struct {
	Hash    string
	Timeout float64
}

// Error implements the error interface.
func (e *JobTimeoutError) Error() string {
	return fmt.Sprintf("batch job %s did not complete within %gs", e.Hash, e.Timeout)
}

// Static errors that can be wrapped with context.
var (
	ErrJobFailed        = errors.New("batch job failed")
	ErrInvalidDateRange = errors.New("start must be before or equal to end")
	ErrConfigRequired   = errors.New("config is required")
	ErrAPIIDRequired    = errors.New("API ID is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrInvalidChunkDays = errors.New("max days must be positive")
)

// statusKinds is the fixed status-to-kind dispatch table. Codes not listed
// here map to ErrorKindServer when >= 500 and ErrorKindGeneric otherwise.
var statusKinds = map[int]ErrorKind{
	400: ErrorKindValidation,
	403: ErrorKindAuth,
	404: ErrorKindNotFound,
	422: ErrorKindValidation,
	429: ErrorKindRateLimit,
}

// KindForStatus returns the ErrorKind for an HTTP status code.
func KindForStatus(statusCode int) ErrorKind {
	if kind, ok := statusKinds[statusCode]; ok {
		return kind
	}

	if statusCode >= 500 {
		return ErrorKindServer
	}

	return ErrorKindGeneric
}

// ParseErrorBody parses a raw error response body into a structured document.
// Bodies that are not JSON objects (HTML pages, bare strings, arrays, empty
// bodies) degrade to a synthetic document with type "Unknown" and a message
// built from the raw text or, failing that, the status code. It never fails.
func ParseErrorBody(statusCode int, body []byte) map[string]interface{} {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return map[string]interface{}{
			"type":    "Unknown",
			"message": fmt.Sprintf("HTTP %d", statusCode),
		}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err == nil {
		return doc
	}

	return map[string]interface{}{
		"type":    "Unknown",
		"message": trimmed,
	}
}

// NewStatusError builds a StatusError from a status code and raw body,
// applying the dispatch table and the error-body parsing rules. The one
// documented irregularity is handled here: some validation errors carry their
// detail under a plural "messages" array instead of the singular "message"
// string, in which case the elements are joined with "; ".
func NewStatusError(statusCode int, body []byte) *StatusError {
	doc := ParseErrorBody(statusCode, body)

	errType, _ := doc["type"].(string)

	message := extractMessage(doc)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &StatusError{
		Kind:       KindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
		ErrorType:  errType,
		Body:       doc,
	}
}

func extractMessage(doc map[string]interface{}) string {
	if msg, ok := doc["message"].(string); ok {
		return msg
	}

	if raw, ok := doc["messages"].([]interface{}); ok {
		parts := make([]string, 0, len(raw))
		for _, part := range raw {
			parts = append(parts, fmt.Sprint(part))
		}

		return strings.Join(parts, "; ")
	}

	return ""
}

// IsAuth checks if the error is a 403 auth error.
func IsAuth(err error) bool {
	return hasKind(err, ErrorKindAuth)
}

// IsRateLimit checks if the error is a 429 rate-limit error.
func IsRateLimit(err error) bool {
	return hasKind(err, ErrorKindRateLimit)
}

// IsValidation checks if the error is a 400/422 validation error.
func IsValidation(err error) bool {
	return hasKind(err, ErrorKindValidation)
}

// IsNotFound checks if the error is a 404 not-found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsServer checks if the error is a 5xx server error.
func IsServer(err error) bool {
	return hasKind(err, ErrorKindServer)
}

// IsTimeout checks if the error is a transport-level timeout.
func IsTimeout(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr) && connErr.Timeout
}

func hasKind(err error, kind ErrorKind) bool {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.Kind == kind
	}

	return false
}
