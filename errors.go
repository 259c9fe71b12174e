package deepl

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the error type returned by every Client operation. Code is a
// stable machine-readable kind; Internal carries the underlying cause, if any.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Internal   error
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

var (
	// ErrInvalidResponse means the request succeeded but the response body
	// did not decode into the expected shape.
	ErrInvalidResponse = &Error{
		Code:    "invalid_response",
		Message: "response body did not match the expected shape",
	}

	// ErrRequestFail covers transport failures and non-2xx responses.
	ErrRequestFail = &Error{
		Code:    "request_fail",
		Message: "request failed",
	}

	// ErrReadFile means a local file could not be read for upload.
	ErrReadFile = &Error{
		Code:    "read_file_error",
		Message: "failed to read local file",
	}

	// ErrWriteFile means a downloaded document could not be written locally.
	ErrWriteFile = &Error{
		Code:    "write_file_error",
		Message: "failed to write local file",
	}

	// ErrDocumentNotFound means a download referenced an unknown document ID
	// or the wrong document key.
	ErrDocumentNotFound = &Error{
		Code:       "document_not_found",
		Message:    "no document matches the given ID and key",
		StatusCode: http.StatusNotFound,
	}

	// ErrTranslationNotDone means a download was attempted while the
	// translation was still in progress.
	ErrTranslationNotDone = &Error{
		Code:       "translation_not_done",
		Message:    "document translation is not finished yet",
		StatusCode: http.StatusServiceUnavailable,
	}
)

func wrap(err error, kind *Error) *Error {
	return &Error{
		Code:       kind.Code,
		Message:    kind.Message,
		StatusCode: kind.StatusCode,
		Internal:   err,
	}
}

func wrapWithMessage(err error, kind *Error, message string) *Error {
	return &Error{
		Code:       kind.Code,
		Message:    message,
		StatusCode: kind.StatusCode,
		Internal:   err,
	}
}

// Is reports whether err carries the same error code as target.
func Is(err error, target *Error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == target.Code
	}
	return false
}

// Code extracts the error code from err, or "request_fail" for foreign errors.
func Code(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrRequestFail.Code
}
