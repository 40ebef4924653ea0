package model

import "fmt"

// ManifestErrorType classifies manifest loading failures.
type ManifestErrorType int

const (
	// ManifestMissing indicates the template root has no jamgen.yaml.
	ManifestMissing ManifestErrorType = iota
	// ManifestInvalid indicates the manifest could not be parsed or violates its schema.
	ManifestInvalid
)

// String returns the string representation of the error type.
func (t ManifestErrorType) String() string {
	switch t {
	case ManifestMissing:
		return "Missing"
	case ManifestInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// ManifestError is returned by LoadManifest and ParseManifest.
type ManifestError struct {
	Type ManifestErrorType
	// Message is the human-readable description.
	Message string
	// File is the manifest path.
	File string
	// Field is the dotted path of the offending field, if any.
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	msg := fmt.Sprintf("manifest %s", e.File)
	if e.Field != "" {
		msg = fmt.Sprintf("%s [field: %s]", msg, e.Field)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

func newMissingError(file string, cause error) *ManifestError {
	return &ManifestError{Type: ManifestMissing, File: file, Message: "template manifest not found", Cause: cause}
}

func newInvalidError(file, field, message string, cause error) *ManifestError {
	return &ManifestError{Type: ManifestInvalid, File: file, Field: field, Message: message, Cause: cause}
}
