package generator

import "fmt"

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a filesystem read or write failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorRenderFailed indicates a file name or file content failed to render.
	GeneratorRenderFailed
	// GeneratorPathError indicates an invalid or unsafe path was encountered.
	GeneratorPathError
	// GeneratorOutputExists indicates the output directory already exists.
	GeneratorOutputExists
	// GeneratorInvalidOptions indicates missing or inconsistent GenerateOptions.
	GeneratorInvalidOptions
)

// String returns the string representation of the error type.
func (t GeneratorErrorType) String() string {
	switch t {
	case GeneratorWriteFailed:
		return "WriteFailed"
	case GeneratorRenderFailed:
		return "RenderFailed"
	case GeneratorPathError:
		return "PathError"
	case GeneratorOutputExists:
		return "OutputExists"
	case GeneratorInvalidOptions:
		return "InvalidOptions"
	default:
		return "Unknown"
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
