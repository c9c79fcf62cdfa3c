package highrise

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid highrise configuration")
	// ErrMissingField indicates a required field was absent from a record
	ErrMissingField = errors.New("required field missing")
	// ErrInvalidTimestamp indicates a since value not in YYYYMMDDHHMMSS form
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrUnknownCategoryKind indicates a category kind other than task or deal
	ErrUnknownCategoryKind = errors.New("unknown category kind")
	// ErrEmptyResponse indicates the service acknowledged a call that should have returned an entity
	ErrEmptyResponse = errors.New("highrise returned no content")
)

// APIError represents a non-success HTTP status returned by Highrise
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("highrise API error: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ParseError reports a response body that could not be turned into entities.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to parse entities from endpoint %s", e.Endpoint)
	}
	return fmt.Sprintf("failed to parse entities from endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimestampError reports a since value that is not in YYYYMMDDHHMMSS form.
type TimestampError struct {
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected format YYYYMMDDHHMMSS", e.Value)
}

func (e *TimestampError) Unwrap() error {
	return ErrInvalidTimestamp
}

// FieldError reports a field that could not be mapped. Field is the local
// (underscored) name.
type FieldError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%s record is missing required field %s", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s field %s: invalid value %q: %v", e.Entity, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// MappingError reports which element of a list failed to map.
type MappingError struct {
	Entity string
	Index  int
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s #%d: %v", e.Entity, e.Index, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}
