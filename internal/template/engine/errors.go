package engine

import "fmt"

// RenderErrorType classifies rendering failures.
type RenderErrorType int

const (
	// RenderParseFailed indicates malformed template syntax.
	RenderParseFailed RenderErrorType = iota
	// RenderEvalFailed indicates an undefined variable or filter, or a failing filter.
	RenderEvalFailed
)

// String returns the string representation of the error type.
func (t RenderErrorType) String() string {
	switch t {
	case RenderParseFailed:
		return "ParseFailed"
	case RenderEvalFailed:
		return "EvalFailed"
	default:
		return "Unknown"
	}
}

// RenderError is returned by Render and RenderFilename.
type RenderError struct {
	Type    RenderErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error [%s]: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}
