package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the template could not be fetched.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates the template was not found at the source.
	ProviderNotFound
	// ProviderAuthFailed indicates the remote rejected the credentials.
	ProviderAuthFailed
	// ProviderInvalidURL indicates the source reference is malformed.
	ProviderInvalidURL
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderAuthFailed:
		return "AuthFailed"
	case ProviderInvalidURL:
		return "InvalidURL"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "bundled", "git").
	Provider string
	// Source is the template name, path or URL that caused the error.
	Source string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Source, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, source, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Source:   source,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, source string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, source, "failed to fetch template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, source, message string) *ProviderError {
	if message == "" {
		message = "template not found"
	}
	return NewProviderError(ProviderNotFound, provider, source, message, nil)
}

// NewAuthError creates an authentication failed error.
func NewAuthError(provider, source string, cause error) *ProviderError {
	return NewProviderError(ProviderAuthFailed, provider, source, "authentication failed (private repository?)", cause)
}

// NewInvalidURLError creates an invalid URL error.
func NewInvalidURLError(provider, source string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidURL, provider, source, "invalid template source", cause)
}
