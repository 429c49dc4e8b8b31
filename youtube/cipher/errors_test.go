package cipher

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/ytget/ytinfo/errs"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "error with details",
			err: &Error{
				Code:    ErrCodeJSExecutionFailed,
				Message: "failed to call decipher",
				Details: map[string]any{"signature": "abc123"},
			},
			expected: "JS_EXECUTION_FAILED: failed to call decipher (map[signature:abc123])",
		},
		{
			name: "error without details",
			err: &Error{
				Code:    ErrCodePlayerJSNotFound,
				Message: "failed to read player script",
			},
			expected: "PLAYER_JS_NOT_FOUND: failed to read player script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_MarshalJSON(t *testing.T) {
	err := NewError(ErrCodeSignatureTimeout, "decipher exceeded 2s", map[string]any{"signature": "abc123"})

	data, err2 := json.Marshal(err)
	if err2 != nil {
		t.Fatalf("Failed to marshal error: %v", err2)
	}

	var result map[string]any
	if err2 := json.Unmarshal(data, &result); err2 != nil {
		t.Fatalf("Failed to unmarshal error: %v", err2)
	}

	if code, ok := result["code"].(string); !ok || code != ErrCodeSignatureTimeout {
		t.Errorf("Wrong code in JSON: %v", result["code"])
	}
	if msg, ok := result["message"].(string); !ok || msg != "decipher exceeded 2s" {
		t.Errorf("Wrong message in JSON: %v", result["message"])
	}
	if errStr, ok := result["error"].(string); !ok || errStr != err.Error() {
		t.Errorf("Wrong error string in JSON: %v", result["error"])
	}
	details, ok := result["details"].(map[string]any)
	if !ok {
		t.Fatal("Details missing or wrong type")
	}
	if sig, ok := details["signature"].(string); !ok || sig != "abc123" {
		t.Errorf("Wrong signature in details: %v", details["signature"])
	}
}

func TestError_IsCipherFailed(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NewError(ErrCodeSignatureInvalid, "empty signature"))

	if !errors.Is(err, errs.ErrCipherFailed) {
		t.Error("Expected wrapped cipher error to match errs.ErrCipherFailed")
	}
	if !IsInvalid(err) {
		t.Error("Expected IsInvalid to see through wrapping")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		isTO  bool
		isNF  bool
		isInv bool
		isJS  bool
	}{
		{name: "timeout error", err: NewError(ErrCodeSignatureTimeout, "Timeout"), isTO: true},
		{name: "not found error (player.js)", err: NewError(ErrCodePlayerJSNotFound, "Not found"), isNF: true},
		{name: "not found error (decipher)", err: NewError(ErrCodeDecipherUndefined, "Not found"), isNF: true},
		{name: "invalid error", err: NewError(ErrCodeSignatureInvalid, "Invalid"), isInv: true},
		{name: "js execution error", err: NewError(ErrCodeJSExecutionFailed, "JS failed"), isJS: true},
		{name: "js parsing error", err: NewError(ErrCodeJSParsingFailed, "JS parse failed"), isJS: true},
		{name: "url error", err: NewError(ErrCodeURLInvalid, "bad url")},
		{name: "non-Error type", err: errors.New("plain")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.isTO {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.isTO)
			}
			if got := IsNotFound(tt.err); got != tt.isNF {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNF)
			}
			if got := IsInvalid(tt.err); got != tt.isInv {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.isInv)
			}
			if got := IsJSError(tt.err); got != tt.isJS {
				t.Errorf("IsJSError() = %v, want %v", got, tt.isJS)
			}
		})
	}
}
