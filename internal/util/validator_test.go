package util

import (
	"errors"
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/go-playground/validator/v10"
)

func TestGenerateErrorMessagesFromValidationError(t *testing.T) {
	err := apperror.NewValidationError("rating", "rating must be between 1 and 5")

	out := GenerateErrorMessages(err)
	if len(out) != 1 {
		t.Fatalf("got %d errors, want 1", len(out))
	}
	if out[0].Field != "rating" || out[0].Message != "rating must be between 1 and 5" {
		t.Errorf("unexpected error: %+v", out[0])
	}
}

func TestGenerateErrorMessagesNotFound(t *testing.T) {
	out := GenerateErrorMessages(apperror.ErrNotFound, "workshop")
	if len(out) != 1 {
		t.Fatalf("got %d errors, want 1", len(out))
	}
	if out[0].Field != "workshop" || out[0].Message != "Record not found" {
		t.Errorf("unexpected error: %+v", out[0])
	}
}

func TestGenerateErrorMessagesFallback(t *testing.T) {
	out := GenerateErrorMessages(errors.New("boom"))
	if len(out) != 1 {
		t.Fatalf("got %d errors, want 1", len(out))
	}
	if out[0].Field != "Unknown" || out[0].Message != "boom" {
		t.Errorf("unexpected error: %+v", out[0])
	}
}

func TestGenerateErrorMessagesFromValidator(t *testing.T) {
	v := validator.New()

	type form struct {
		Email  string `validate:"required,email"`
		Rating int    `validate:"gte=1,lte=5"`
	}

	err := v.Struct(form{Email: "not-an-email", Rating: 9})
	out := GenerateErrorMessages(err)
	if len(out) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(out), out)
	}
}

func TestStrNotEmpty(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		t.Fatalf("failed to register validation: %v", err)
	}

	type form struct {
		Name string `validate:"strNotEmpty"`
	}

	if err := v.Struct(form{Name: "ok"}); err != nil {
		t.Errorf("non-empty string rejected: %v", err)
	}
	if err := v.Struct(form{Name: "   "}); err == nil {
		t.Error("whitespace-only string accepted")
	}
	if err := v.Struct(form{Name: ""}); err == nil {
		t.Error("empty string accepted")
	}
}
