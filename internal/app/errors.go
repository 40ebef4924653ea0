package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// VariableLoadFailed indicates preset variables could not be loaded.
	VariableLoadFailed AppErrorType = iota
	// TemplateFetchFailed indicates the template source could not be materialized.
	TemplateFetchFailed
	// ValidationFailed indicates a project name or variable value was rejected.
	ValidationFailed
	// OutputExists indicates the project directory is already present.
	OutputExists
	// GenerateFailed indicates project generation failed.
	GenerateFailed
	// GitInitFailed indicates the generated project could not be made a git repository.
	GitInitFailed
	// PromptFailed indicates interactive input was aborted or failed.
	PromptFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case VariableLoadFailed:
		return "VariableLoadFailed"
	case TemplateFetchFailed:
		return "TemplateFetchFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case OutputExists:
		return "OutputExists"
	case GenerateFailed:
		return "GenerateFailed"
	case GitInitFailed:
		return "GitInitFailed"
	case PromptFailed:
		return "PromptFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewVariableLoadError creates a variable load error.
func NewVariableLoadError(message string, cause error) *AppError {
	return NewAppError(VariableLoadFailed, message, cause)
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(message string, cause error) *AppError {
	return NewAppError(TemplateFetchFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
