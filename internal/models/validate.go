package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"soclone/internal/utils"
)

// MinBodyLength is the floor for problem, effort and answer bodies, counted
// after markup is stripped.
const MinBodyLength = 20

type ValidationError struct {
	Field  string
	Length int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be %d characters or more, got %d", e.Field, MinBodyLength, e.Length)
}

// ValidateMinLength counts the runes left after tags are stripped, so a wall
// of markup cannot pass for content.
func ValidateMinLength(field, value string) error {
	plain := strings.TrimSpace(utils.StripTags(value))
	if n := utf8.RuneCountInString(plain); n < MinBodyLength {
		return &ValidationError{Field: field, Length: n}
	}
	return nil
}
