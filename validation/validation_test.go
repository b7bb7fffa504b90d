package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/kbukum/fnkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "John")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "   ")
	if !v2.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorNumbers(t *testing.T) {
	tests := []struct {
		name    string
		run     func(v *Validator)
		wantErr bool
	}{
		{"positive ok", func(v *Validator) { v.Positive("size", 1) }, false},
		{"positive zero", func(v *Validator) { v.Positive("size", 0) }, true},
		{"non-negative zero", func(v *Validator) { v.NonNegative("count", 0) }, false},
		{"non-negative negative", func(v *Validator) { v.NonNegative("count", -1) }, true},
		{"not empty", func(v *Validator) { v.NotEmpty("items", 0) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tt.run(v)
			if v.HasErrors() != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v (%v)", v.HasErrors(), tt.wantErr, v.Errors())
			}
		})
	}
}

func TestValidatorOneOf(t *testing.T) {
	if New().OneOf("format", "", []string{"json"}).HasErrors() {
		t.Error("expected empty value to be left to Required")
	}
	v := New()
	v.OneOf("format", "json", []string{"json", "console"})
	if v.HasErrors() {
		t.Error("expected json to be allowed")
	}
	v.OneOf("format", "xml", []string{"json", "console"})
	if !v.HasErrors() {
		t.Fatal("expected xml to be rejected")
	}
	if !strings.Contains(v.Errors()[0].Message, "json, console") {
		t.Errorf("unexpected message %q", v.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	if New().Required("name", "John").Validate() != nil {
		t.Error("expected nil for valid input")
	}
	if New().Error() != nil {
		t.Error("expected Error() to be a true nil")
	}

	v := New()
	v.Required("name", "")
	v.NonNegative("count", -2)
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name") || !strings.Contains(appErr.Message, "count") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("name", "John").Positive("size", 2).OneOf("case", "kebab", []string{"kebab", "snake"})
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestSingleFieldHelpers(t *testing.T) {
	if NonNegative("count", -1) == nil {
		t.Error("expected error for negative count")
	}
	if Positive("size", 0) == nil {
		t.Error("expected error for zero size")
	}
}

type retrySection struct {
	MaxAttempts    int           `mapstructure:"max_attempts" validate:"gte=1"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" validate:"gte=0"`
}

type settings struct {
	Format string       `mapstructure:"format" validate:"oneof=json console"`
	Retry  retrySection `mapstructure:"retry"`
}

func TestStructValidateValid(t *testing.T) {
	err := Validate(settings{Format: "json", Retry: retrySection{MaxAttempts: 3}})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateNestedFieldPath(t *testing.T) {
	err := Validate(settings{Format: "xml", Retry: retrySection{MaxAttempts: 0}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "retry.max_attempts: must be at least 1") {
		t.Errorf("expected nested path in error, got %q", errStr)
	}
	if !strings.Contains(errStr, "format: must be one of: json console") {
		t.Errorf("expected format error, got %q", errStr)
	}
}
