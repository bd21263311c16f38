package models

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMinLengthBoundary(t *testing.T) {
	if err := ValidateMinLength("problem", strings.Repeat("a", 20)); err != nil {
		t.Errorf("20 characters should pass, got %v", err)
	}

	err := ValidateMinLength("problem", strings.Repeat("a", 19))
	if err == nil {
		t.Fatal("19 characters should fail")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if verr.Length != 19 {
		t.Errorf("Expected reported length 19, got %d", verr.Length)
	}
	if verr.Field != "problem" {
		t.Errorf("Expected field problem, got %q", verr.Field)
	}
}

func TestValidateMinLengthStripsMarkup(t *testing.T) {
	// Markup must not count toward the minimum
	if err := ValidateMinLength("body", "<b><i><u>"+strings.Repeat("x", 19)+"</u></i></b>"); err == nil {
		t.Error("19 visible characters wrapped in markup should fail")
	}
	if err := ValidateMinLength("body", "<b>"+strings.Repeat("x", 20)+"</b>"); err != nil {
		t.Errorf("20 visible characters wrapped in markup should pass, got %v", err)
	}
}

func TestValidateMinLengthTrimsWhitespace(t *testing.T) {
	if err := ValidateMinLength("effort", "   "+strings.Repeat("y", 19)+"   "); err == nil {
		t.Error("Surrounding whitespace should not count")
	}
}
