package httpserver

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

var essayHashRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidateEssayHash validates the essay_hash query parameter.
func ValidateEssayHash(hash string) ValidationResult {
	if hash == "" {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{Field: "essay_hash", Code: "REQUIRED", Message: "essay_hash is required"},
			},
		}
	}
	if !essayHashRe.MatchString(hash) {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{Field: "essay_hash", Code: "INVALID_FORMAT", Message: "essay_hash must be 64 lowercase hex characters"},
			},
		}
	}
	return ValidationResult{Valid: true}
}

// SanitizeString strips null bytes and control noise from free-form input.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.TrimSpace(input)
	if !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, "")
	}
	return input
}
