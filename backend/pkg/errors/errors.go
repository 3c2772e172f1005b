package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeFetch represents graph/dataset fetch errors
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeContent represents content/data integrity errors
	ErrorTypeContent ErrorType = "content"
	// ErrorTypeAuth represents admin authentication errors
	ErrorTypeAuth ErrorType = "auth"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when the Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, "query failed", err),
		Query:     query,
	}
}

// Fetch Errors

// ErrFetchFailed is returned when a tier graph or dataset fetch fails.
// Callers must recover by keeping the previously rendered graph.
type ErrFetchFailed struct {
	*BaseError
	Tier string
}

func NewFetchFailed(tier string, err error) *ErrFetchFailed {
	return &ErrFetchFailed{
		BaseError: NewBaseError(ErrorTypeFetch, fmt.Sprintf("failed to fetch graph for tier %q", tier), err),
		Tier:      tier,
	}
}

// ErrFetchTimeout is returned when a fetch exceeds its deadline
type ErrFetchTimeout struct {
	*BaseError
	Tier    string
	Timeout time.Duration
}

func NewFetchTimeout(tier string, timeout time.Duration) *ErrFetchTimeout {
	return &ErrFetchTimeout{
		BaseError: NewBaseError(ErrorTypeFetch, fmt.Sprintf("fetch timed out for tier %q after %v", tier, timeout), nil),
		Tier:      tier,
		Timeout:   timeout,
	}
}

// Content Errors

// ErrInvalidTier is returned when an unknown visibility tier is requested
type ErrInvalidTier struct {
	*BaseError
	Tier string
}

func NewInvalidTier(tier string) *ErrInvalidTier {
	return &ErrInvalidTier{
		BaseError: NewBaseError(ErrorTypeContent, fmt.Sprintf("invalid tier: %q", tier), nil),
		Tier:      tier,
	}
}

// Auth Errors

// ErrAuthInvalidCredentials is returned on a failed admin login
var ErrAuthInvalidCredentials = NewBaseError(ErrorTypeAuth, "invalid credentials", nil)

// ErrAuthSessionExpired is returned when an admin session token is stale or malformed
var ErrAuthSessionExpired = NewBaseError(ErrorTypeAuth, "session expired", nil)

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// Kind returns the error category. Promoted through embedding so typed
// errors report their category without a type switch.
func (e *BaseError) Kind() ErrorType {
	return e.Type
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if kinded, ok := err.(interface{ Kind() ErrorType }); ok {
		return kinded.Kind() == errType
	}
	if wrapper, ok := err.(interface{ Unwrap() error }); ok {
		inner := wrapper.Unwrap()
		if inner != nil {
			return IsErrorType(inner, errType)
		}
	}
	return false
}

// IsRecoverable reports whether the error should be handled by falling back
// to the previous state rather than failing the render
func IsRecoverable(err error) bool {
	return IsErrorType(err, ErrorTypeFetch) || IsErrorType(err, ErrorTypeGraph)
}
