package deepl

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	e := &Error{Code: "request_fail", Message: "request failed"}
	if got := e.Error(); got != "request_fail: request failed" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := wrap(errors.New("connection refused"), ErrRequestFail)
	if got := wrapped.Error(); got != "request_fail: request failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := wrap(cause, ErrReadFile)

	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
}

func TestIs(t *testing.T) {
	err := wrap(errors.New("gone"), ErrDocumentNotFound)

	if !Is(err, ErrDocumentNotFound) {
		t.Error("Is should match errors of the same kind")
	}
	if Is(err, ErrTranslationNotDone) {
		t.Error("Is should not match errors of a different kind")
	}
	if Is(errors.New("plain"), ErrRequestFail) {
		t.Error("Is should not match foreign errors")
	}

	// Matching survives further wrapping.
	outer := fmt.Errorf("download: %w", err)
	if !Is(outer, ErrDocumentNotFound) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
}

func TestCode(t *testing.T) {
	if got := Code(wrap(nil, ErrWriteFile)); got != "write_file_error" {
		t.Errorf("Code = %q, want write_file_error", got)
	}
	if got := Code(errors.New("plain")); got != "request_fail" {
		t.Errorf("Code = %q, want request_fail for foreign errors", got)
	}
}
