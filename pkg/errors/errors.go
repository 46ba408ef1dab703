package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// ColorFormatError reports a color string that could not be parsed.
type ColorFormatError struct {
	Input   string
	Message string
	Err     error
}

// NewColorFormatError constructs a ColorFormatError.
func NewColorFormatError(input, message string, err error) error {
	return &ColorFormatError{Input: input, Message: message, Err: err}
}

func (e *ColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("invalid color %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("invalid color %q", e.Input)
}

// Unwrap exposes the underlying error.
func (e *ColorFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ChannelError is raised when a channel is used with a color space that does
// not define it.
type ChannelError struct {
	Channel string
	Space   string
}

// NewChannelError constructs a ChannelError.
func NewChannelError(channel, space string) error {
	return &ChannelError{Channel: channel, Space: space}
}

func (e *ChannelError) Error() string {
	if e == nil {
		return ""
	}
	if e.Space != "" {
		return fmt.Sprintf("unsupported color channel %q for %s", e.Channel, e.Space)
	}
	return fmt.Sprintf("unsupported color channel %q", e.Channel)
}
