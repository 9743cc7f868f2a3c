package domain

import "fmt"

// ValidationError reports a field-level constraint violation detected at
// construction time. No entity is ever observable in a partially valid
// state: constructors return this error instead of the entity.
type ValidationError struct {
	Field   string // Name of the offending field, e.g. "mastery_score"
	Message string // Human-readable description of the violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// invalidf builds a ValidationError for the given field.
func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
