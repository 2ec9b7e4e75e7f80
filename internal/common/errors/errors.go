// Package errors provides standardized error handling for the recommendation service.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeStoreConnectionFailed   ErrorCode = "STORE_CONNECTION_FAILED"
	ErrCodeOrderHistoryFetchFailed ErrorCode = "ORDER_HISTORY_FETCH_FAILED"
	ErrCodeCatalogFetchFailed      ErrorCode = "CATALOG_FETCH_FAILED"
	ErrCodeDocumentInvalid         ErrorCode = "DOCUMENT_INVALID"
	ErrCodeRecommendationFailed    ErrorCode = "RECOMMENDATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// AsStandardError extracts a *StandardError from an error chain, if present.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// ==========================
// 2. Error Constructors
// ==========================

// NewStoreConnectionFailedError creates a retryable store connectivity error.
func NewStoreConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreConnectionFailed,
		Message:   "Store connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewOrderHistoryFetchFailedError creates a retryable order-history read error.
// A legitimately empty store is not an error; this is reserved for transport
// and decode failures, so callers never mistake an outage for "no orders".
func NewOrderHistoryFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOrderHistoryFetchFailed,
		Message:   "Failed to fetch order history",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewCatalogFetchFailedError creates a retryable catalog read error.
func NewCatalogFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogFetchFailed,
		Message:   "Failed to fetch menu catalog",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewDocumentInvalidError creates a non-retryable document validation error.
func NewDocumentInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentInvalid,
		Message:   "Store document failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendationFailedError wraps an unexpected pipeline failure.
func NewRecommendationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecommendationFailed,
		Message:   "Recommendation pipeline failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}
