package errors

import (
	"fmt"
	"strings"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotFound        = fmt.Errorf("token not found")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("forbidden")

	// Context
	ErrActorNotFoundInContext = fmt.Errorf("actor not found in request context")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")

	// Lifecycle: the order already sits in the terminal stage, there is no
	// next status to advance to. Non-retryable.
	ErrAlreadyTerminal = fmt.Errorf("order is already in its final stage")
)

// HttpError carries an HTTP status alongside the user-facing message. The
// underlying error and details stay server-side (logs), only Code/Message
// reach the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// ValidationError collects every violated stage/pairing rule of one
// submission. Reasons are human-readable and exhaustive, never fail-fast,
// so the caller can show all problems at once.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func NewValidationError(reasons []string) error {
	return &ValidationError{Reasons: reasons}
}

// UploadError marks the document kind whose transfer to the media host
// failed. Sibling files uploaded earlier in the same submission are not
// rolled back.
type UploadError struct {
	Kind string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.Kind, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

func NewUploadError(kind string, err error) error {
	return &UploadError{Kind: kind, Err: err}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
