package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a layout document that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures layout document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationErrors aggregates every issue found in one document.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	parts := make([]string, 0, len(e))
	for _, item := range e {
		parts = append(parts, item.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(e), strings.Join(parts, "\n  "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, item := range e {
		out = append(out, item)
	}
	return out
}

// LayoutError reports a failure while producing or presenting a layout,
// such as a preview that could not start or a watcher that failed.
type LayoutError struct {
	Op  string
	Err error
}

// NewLayoutError constructs a LayoutError for the given operation.
func NewLayoutError(op string, err error) error {
	return &LayoutError{Op: op, Err: err}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("layout error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("layout error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
