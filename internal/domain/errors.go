package domain

import (
	"fmt"
	"strings"
	"time"
)

// EvaluationError represents a standardized error returned by the service layer
type EvaluationError struct {
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	Details      string    `json:"details,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	EvaluationID string    `json:"evaluation_id,omitempty"`
	cause        error
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *EvaluationError) Unwrap() error {
	return e.cause
}

// Error codes for different failure scenarios
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeCatalog        = "CATALOG_ERROR"
	ErrCodeConfiguration  = "CONFIGURATION_ERROR"
	ErrCodeCancelled      = "CANCELLED"
	ErrCodeInternalServer = "INTERNAL_ERROR"
)

// NewEvaluationError creates a new EvaluationError with timestamp
func NewEvaluationError(code, message, details, evaluationID string, cause error) *EvaluationError {
	return &EvaluationError{
		Code:         code,
		Message:      message,
		Details:      details,
		Timestamp:    time.Now().UTC(),
		EvaluationID: evaluationID,
		cause:        cause,
	}
}

// ValidationError represents a single input or catalog validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// AnswerSetError reports every problem found in an answer set under strict validation.
type AnswerSetError struct {
	Issues []*ValidationError `json:"issues"`
}

// Error implements the error interface
func (e *AnswerSetError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Error())
	}
	return fmt.Sprintf("%s: %d issue(s): %s", ErrInvalidAnswers, len(e.Issues), strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidAnswers
func (e *AnswerSetError) Unwrap() error {
	return ErrInvalidAnswers
}
