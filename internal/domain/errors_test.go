package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestEvaluationError(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		message      string
		details      string
		evaluationID string
		cause        error
	}{
		{
			name:         "Validation error",
			code:         ErrCodeValidation,
			message:      "Answer set rejected",
			details:      "2 unknown question ids",
			evaluationID: "eval-123",
			cause:        ErrInvalidAnswers,
		},
		{
			name:         "Cancelled",
			code:         ErrCodeCancelled,
			message:      "Evaluation cancelled",
			evaluationID: "eval-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEvaluationError(tt.code, tt.message, tt.details, tt.evaluationID, tt.cause)

			if err.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, err.Code)
			}
			if err.Details != tt.details {
				t.Errorf("Expected details %s, got %s", tt.details, err.Details)
			}
			if err.EvaluationID != tt.evaluationID {
				t.Errorf("Expected evaluationID %s, got %s", tt.evaluationID, err.EvaluationID)
			}
			if time.Since(err.Timestamp) > time.Minute {
				t.Errorf("Timestamp should be recent, got %v", err.Timestamp)
			}

			expectedError := tt.code + ": " + tt.message
			if err.Error() != expectedError {
				t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("Expected error to wrap %v", tt.cause)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
		value   interface{}
	}{
		{
			name:    "Unknown option",
			field:   "answers.com_12_words",
			message: "unknown option value",
			value:   "sometimes-ish",
		},
		{
			name:    "Negative age",
			field:   "age_in_months",
			message: "must not be negative",
			value:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message, tt.value)

			if err.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, err.Field)
			}
			if err.Value != tt.value {
				t.Errorf("Expected value %v, got %v", tt.value, err.Value)
			}

			expectedError := "validation error for field '" + tt.field + "': " + tt.message
			if err.Error() != expectedError {
				t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
			}
		})
	}
}

func TestAnswerSetError(t *testing.T) {
	err := &AnswerSetError{Issues: []*ValidationError{
		NewValidationError("answers.a", "unknown question id", "x"),
		NewValidationError("answers.b", "unknown option value", "y"),
	}}

	if !errors.Is(err, ErrInvalidAnswers) {
		t.Error("Expected AnswerSetError to match ErrInvalidAnswers")
	}

	wrapped := fmt.Errorf("evaluate: %w", err)
	var target *AnswerSetError
	if !errors.As(wrapped, &target) {
		t.Fatal("Expected errors.As to find AnswerSetError")
	}
	if len(target.Issues) != 2 {
		t.Errorf("Expected 2 issues, got %d", len(target.Issues))
	}
	if !strings.Contains(err.Error(), "2 issue(s)") {
		t.Errorf("Unexpected error string %s", err.Error())
	}
}

func TestErrorCodeConstants(t *testing.T) {
	expected := map[string]string{
		ErrCodeInvalidInput:   "INVALID_INPUT",
		ErrCodeValidation:     "VALIDATION_ERROR",
		ErrCodeCatalog:        "CATALOG_ERROR",
		ErrCodeConfiguration:  "CONFIGURATION_ERROR",
		ErrCodeCancelled:      "CANCELLED",
		ErrCodeInternalServer: "INTERNAL_ERROR",
	}

	for actual, want := range expected {
		if actual != want {
			t.Errorf("Expected %s, got %s", want, actual)
		}
	}
}
