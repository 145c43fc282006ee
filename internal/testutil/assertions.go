package testutil

import (
	"errors"
	"testing"

	apperrors "fintrack/internal/errors"
)

// AssertAppError fails the test unless err unwraps to an *AppError
// carrying the given code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected code %q, got %q (%s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test when err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
