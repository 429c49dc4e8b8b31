package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidID indicates that the media identifier is empty or malformed.
	ErrInvalidID = errors.New("invalid video id")
	// ErrFetchFailed indicates that the metadata request failed at the transport level
	// or returned a non-success status.
	ErrFetchFailed = errors.New("metadata fetch failed")
	// ErrRequiredField indicates that a field needed for basic operation is absent
	// from the decoded metadata.
	ErrRequiredField = errors.New("required field missing")
	// ErrInvalidFormat indicates that the caller requested an encoding the video does not offer.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNoAcceptableFormat indicates that automatic selection found no usable encoding.
	ErrNoAcceptableFormat = errors.New("could not determine the best available format, the site has likely changed its layout")
	// ErrUnresolvedURL indicates that the chosen encoding has no usable source URL.
	ErrUnresolvedURL = errors.New("format url unresolved")
	// ErrCipherFailed indicates failure during signature deciphering.
	ErrCipherFailed = errors.New("cipher failed")
)

// FieldError reports a missing metadata field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrRequiredField, e.Field)
}

// Is reports whether target is ErrRequiredField.
func (e *FieldError) Is(target error) bool {
	return target == ErrRequiredField
}

// FormatError reports an explicitly requested encoding that is absent from the catalog.
type FormatError struct {
	Requested string
	Valid     []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q. Valid formats are \"%s\"", ErrInvalidFormat, e.Requested, strings.Join(e.Valid, `", "`))
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
