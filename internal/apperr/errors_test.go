package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/weishuo-labs/weishuo-backend/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: parse failed" {
		t.Errorf("expected 'invalid expression: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty username")

	wrapped := fmt.Errorf("failed to register: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty username" {
		t.Errorf("expected 'empty username', got %q", ve.Message)
	}
}

func TestConflictError_FoundThroughWrapping(t *testing.T) {
	original := apperr.NewConflict("用户名已被占用")
	wrapped := fmt.Errorf("register: %w", original)

	var ce *apperr.ConflictError
	if !errors.As(wrapped, &ce) {
		t.Fatal("errors.As should find ConflictError through wrapping")
	}
	if ce.Message != "用户名已被占用" {
		t.Errorf("unexpected message %q", ce.Message)
	}
}

func TestUnauthorizedError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("login: %w", plain)

	var ue *apperr.UnauthorizedError
	if errors.As(wrapped, &ue) {
		t.Fatal("errors.As should NOT find UnauthorizedError in plain error chain")
	}
}
