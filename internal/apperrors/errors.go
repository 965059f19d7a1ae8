package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure categories the handlers translate to HTTP
// status codes. Wrap them with fmt.Errorf("...: %w", ...) to add context.
var (
	// ErrInvalidID means the supplied identifier does not match the id format
	// the storage backend assigns. Checked before any query is issued.
	ErrInvalidID = errors.New("invalid product identifier")

	// ErrNotFound means no record matched a well-formed identifier.
	ErrNotFound = errors.New("product not found")

	// ErrUnsupportedMediaType means the declared content type of an upload is
	// not in the allowed image/video set.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrPayloadTooLarge means an upload exceeded the size ceiling.
	ErrPayloadTooLarge = errors.New("file exceeds maximum allowed size")

	// ErrBackend wraps storage backend or blob store failures (network,
	// timeout, driver errors). Maps to a 500.
	ErrBackend = errors.New("backend failure")
)

// ValidationError aggregates every violated field rule so the client sees all
// problems at once instead of one per round trip.
type ValidationError struct {
	// Missing is true when the violations are absent required fields rather
	// than rule violations on present ones.
	Missing    bool
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NewValidationError builds a ValidationError from rule violations.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NewMissingFieldsError builds a ValidationError for absent required fields.
func NewMissingFieldsError(fields []string) *ValidationError {
	violations := make([]string, 0, len(fields))
	for _, f := range fields {
		violations = append(violations, fmt.Sprintf("%s is required", f))
	}
	return &ValidationError{Missing: true, Violations: violations}
}

// AsValidation extracts a ValidationError from an error chain, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
