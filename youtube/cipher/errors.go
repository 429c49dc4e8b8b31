package cipher

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ytget/ytinfo/errs"
)

// Error codes
const (
	ErrCodePlayerJSNotFound  = "PLAYER_JS_NOT_FOUND"
	ErrCodeDecipherUndefined = "DECIPHER_UNDEFINED"
	ErrCodeSignatureInvalid  = "SIGNATURE_INVALID"
	ErrCodeSignatureTimeout  = "SIGNATURE_TIMEOUT"
	ErrCodeJSExecutionFailed = "JS_EXECUTION_FAILED"
	ErrCodeJSParsingFailed   = "JS_PARSING_FAILED"
	ErrCodeURLInvalid        = "URL_INVALID"
)

// Error represents a structured error with code and details.
// Every Error matches errs.ErrCipherFailed.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap links cipher errors to errs.ErrCipherFailed.
func (e *Error) Unwrap() error {
	return errs.ErrCipherFailed
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	return json.Marshal(&struct {
		*Alias
		Error string `json:"error"`
	}{
		Alias: (*Alias)(e),
		Error: e.Error(),
	})
}

// NewError creates a new Error with the given code and message
func NewError(code string, message string, details ...any) *Error {
	e := &Error{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func hasCode(err error, codes ...string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	for _, c := range codes {
		if e.Code == c {
			return true
		}
	}
	return false
}

// IsTimeout returns true if the error is a timeout error
func IsTimeout(err error) bool {
	return hasCode(err, ErrCodeSignatureTimeout)
}

// IsNotFound returns true if the player script or its decipher function is missing
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodePlayerJSNotFound, ErrCodeDecipherUndefined)
}

// IsInvalid returns true if the error is an invalid signature error
func IsInvalid(err error) bool {
	return hasCode(err, ErrCodeSignatureInvalid)
}

// IsJSError returns true if the error is a JavaScript execution error
func IsJSError(err error) bool {
	return hasCode(err, ErrCodeJSExecutionFailed, ErrCodeJSParsingFailed)
}
