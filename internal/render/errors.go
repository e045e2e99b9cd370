package render

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrConfig ErrorType = iota
	ErrResourceNotFound
	ErrAPI
	ErrEmptySubtitles
	ErrFileWrite
	ErrRender
	ErrUnknown
)

func (t ErrorType) String() string {
	switch t {
	case ErrConfig:
		return "Config"
	case ErrResourceNotFound:
		return "ResourceNotFound"
	case ErrAPI:
		return "API"
	case ErrEmptySubtitles:
		return "EmptySubtitles"
	case ErrFileWrite:
		return "FileWrite"
	case ErrRender:
		return "Render"
	default:
		return "Unknown"
	}
}

// RenderError carries the failure category alongside the underlying cause
// so the CLI can report what stage of the pipeline broke.
type RenderError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func NewError(errorType ErrorType, message string) *RenderError {
	return &RenderError{Type: errorType, Message: message}
}

func WrapError(err error, errorType ErrorType, message string) *RenderError {
	return &RenderError{Type: errorType, Message: message, Cause: err}
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func IsErrorType(err error, errorType ErrorType) bool {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Type == errorType
	}
	return false
}
